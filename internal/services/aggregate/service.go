package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/storage"
)

// lastUpdateFormat is the human-readable timestamp appended to player labels
const lastUpdateFormat = "2006-01-02 15:04"

// Service assembles read-only views from the score store.
// Views are eventually consistent with concurrent writes: a leaderboard
// built mid-update may mix pre- and post-update rows across players.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new aggregation service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// BuildPlayerSummary returns one row per seeded exercise for the player,
// ordered by exercise display name. Exercises the player has never logged
// appear with a total of zero. An empty catalog yields an empty slice.
func (s *Service) BuildPlayerSummary(ctx context.Context, playerID model.PlayerID) ([]model.SummaryRow, error) {
	details, err := s.storage.ListExerciseDetails(ctx)
	if err != nil {
		return nil, err
	}

	scores, err := s.storage.GetPlayerScores(ctx, playerID)
	if err != nil {
		return nil, err
	}

	rows := make([]model.SummaryRow, 0, len(details))
	for id, def := range details {
		rows = append(rows, model.SummaryRow{
			ExerciseID: id,
			Name:       def.Name,
			Total:      scores[id],
			Goal:       def.Goal,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}

// BuildLeaderboardMatrix returns the dense all-players x all-exercises view.
// Exercises are ordered by display name; players by ascending id. Neither
// ordering implies a ranking. Cells for pairs with no score entry are zero.
func (s *Service) BuildLeaderboardMatrix(ctx context.Context) (*model.LeaderboardMatrix, error) {
	details, err := s.storage.ListExerciseDetails(ctx)
	if err != nil {
		return nil, err
	}

	allScores, err := s.storage.GetAllPlayerScores(ctx)
	if err != nil {
		return nil, err
	}

	m := &model.LeaderboardMatrix{}

	exercises := make([]model.ExerciseDef, 0, len(details))
	for _, def := range details {
		exercises = append(exercises, def)
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	for _, def := range exercises {
		m.ExerciseIDs = append(m.ExerciseIDs, def.ID)
		m.ExerciseNames = append(m.ExerciseNames, def.Name)
		m.Goals = append(m.Goals, def.Goal)
	}

	for playerID := range allScores {
		m.PlayerIDs = append(m.PlayerIDs, playerID)
	}
	sort.Slice(m.PlayerIDs, func(i, j int) bool {
		return m.PlayerIDs[i] < m.PlayerIDs[j]
	})

	for _, playerID := range m.PlayerIDs {
		m.PlayerLabels = append(m.PlayerLabels, s.playerLabel(ctx, playerID))
	}

	m.Cells = make([][]int64, len(m.ExerciseIDs))
	for i, exID := range m.ExerciseIDs {
		m.Cells[i] = make([]int64, len(m.PlayerIDs))
		for j, playerID := range m.PlayerIDs {
			m.Cells[i][j] = allScores[playerID][exID]
		}
	}

	return m, nil
}

// playerLabel combines the display name with the last-update time when one
// is recorded. A display lookup failure degrades to the fallback name
// rather than failing the whole view.
func (s *Service) playerLabel(ctx context.Context, playerID model.PlayerID) string {
	display, err := s.storage.GetPlayerDisplay(ctx, playerID)
	if err != nil {
		s.logger.Warn("could not load player display info",
			slog.Int64("player_id", int64(playerID)),
			slog.String("error", err.Error()),
		)
		return fmt.Sprintf("User %d", playerID)
	}
	if display.LastUpdate.IsZero() {
		return display.DisplayName
	}
	return fmt.Sprintf("%s (Upd: %s)", display.DisplayName, display.LastUpdate.Format(lastUpdateFormat))
}

// Interface for dependency injection
type ServiceInterface interface {
	BuildPlayerSummary(ctx context.Context, playerID model.PlayerID) ([]model.SummaryRow, error)
	BuildLeaderboardMatrix(ctx context.Context) (*model.LeaderboardMatrix, error)
}

var _ ServiceInterface = (*Service)(nil)
