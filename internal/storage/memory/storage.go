package memory

import (
	"context"
	"sync"
	"time"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/storage"
)

// Storage is an in-memory implementation of the score store.
// Used for tests and single-process local runs.
type Storage struct {
	mu sync.RWMutex

	exercises  map[model.ExerciseID]model.ExerciseDef
	aliasIndex map[string]model.ExerciseID
	scores     map[model.PlayerID]map[model.ExerciseID]int64
	players    map[model.PlayerID]struct{}
	info       map[model.PlayerID]playerInfoRecord
}

type playerInfoRecord struct {
	info       model.PlayerInfo
	lastUpdate int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		exercises:  make(map[model.ExerciseID]model.ExerciseDef),
		aliasIndex: make(map[string]model.ExerciseID),
		scores:     make(map[model.PlayerID]map[model.ExerciseID]int64),
		players:    make(map[model.PlayerID]struct{}),
		info:       make(map[model.PlayerID]playerInfoRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Close() error {
	return nil
}

// Seeding

func (s *Storage) EnsureSeeded(ctx context.Context, cat *catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.aliasIndex) > 0 {
		return nil
	}
	s.seedLocked(cat)
	return nil
}

func (s *Storage) seedLocked(cat *catalog.Catalog) {
	s.exercises = make(map[model.ExerciseID]model.ExerciseDef, cat.Len())
	s.aliasIndex = make(map[string]model.ExerciseID, cat.Len())
	for id, def := range cat.Exercises() {
		s.exercises[id] = def
		s.aliasIndex[def.Alias] = id
	}
}

// Exercise reads

func (s *Storage) GetExerciseDetails(ctx context.Context, id model.ExerciseID) (model.ExerciseDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.exercises[id]
	if !ok {
		return model.ExerciseDef{}, model.ErrExerciseNotFound
	}
	return def, nil
}

func (s *Storage) ListExerciseDetails(ctx context.Context) (map[model.ExerciseID]model.ExerciseDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.ExerciseID]model.ExerciseDef, len(s.exercises))
	for id, def := range s.exercises {
		out[id] = def
	}
	return out, nil
}

// Score operations

func (s *Storage) GetScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scores[playerID][exerciseID], nil
}

func (s *Storage) GetPlayerScores(ctx context.Context, playerID model.PlayerID) (map[model.ExerciseID]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := make(map[model.ExerciseID]int64, len(s.scores[playerID]))
	for exID, total := range s.scores[playerID] {
		row[exID] = total
	}
	return row, nil
}

func (s *Storage) GetAllPlayerScores(ctx context.Context) (map[model.PlayerID]map[model.ExerciseID]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.PlayerID]map[model.ExerciseID]int64, len(s.players))
	for playerID := range s.players {
		row := make(map[model.ExerciseID]int64, len(s.scores[playerID]))
		for exID, total := range s.scores[playerID] {
			row[exID] = total
		}
		out[playerID] = row
	}
	return out, nil
}

func (s *Storage) IncrementScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.scores[playerID]
	if !ok {
		row = make(map[model.ExerciseID]int64)
		s.scores[playerID] = row
	}
	row[exerciseID] += delta
	return row[exerciseID], nil
}

func (s *Storage) SetScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.scores[playerID]
	if !ok {
		row = make(map[model.ExerciseID]int64)
		s.scores[playerID] = row
	}
	row[exerciseID] = value
	return nil
}

// Player registry and display metadata

func (s *Storage) RegisterPlayer(ctx context.Context, playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[playerID] = struct{}{}
	return nil
}

func (s *Storage) UpsertPlayerInfo(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, lastUpdate int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info[playerID] = playerInfoRecord{info: info, lastUpdate: lastUpdate}
	return nil
}

func (s *Storage) GetPlayerDisplay(ctx context.Context, playerID model.PlayerID) (model.PlayerDisplay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.info[playerID]
	display := model.PlayerDisplay{
		DisplayName: rec.info.DisplayName(playerID),
	}
	if ok && rec.lastUpdate > 0 {
		display.LastUpdate = time.Unix(rec.lastUpdate, 0)
	}
	return display, nil
}

// Maintenance

func (s *Storage) HardReset(ctx context.Context, cat *catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores = make(map[model.PlayerID]map[model.ExerciseID]int64)
	s.players = make(map[model.PlayerID]struct{})
	s.info = make(map[model.PlayerID]playerInfoRecord)
	s.seedLocked(cat)
	return nil
}
