package response

import (
	"sort"

	"github.com/giufus/workout-streak-bot/internal/model"
)

// Progress is the response after recording progress
type Progress struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	NewTotal     int64  `json:"new_total"`
	Goal         int    `json:"goal,omitempty"`
	GoalCrossed  bool   `json:"goal_crossed"`
}

// ProgressFromModel converts a model.ProgressResult
func ProgressFromModel(r model.ProgressResult) Progress {
	return Progress{
		ExerciseID:   string(r.ExerciseID),
		ExerciseName: r.ExerciseName,
		NewTotal:     r.NewTotal,
		Goal:         r.Goal,
		GoalCrossed:  r.GoalCrossed,
	}
}

// SummaryRow is one row of a player summary
type SummaryRow struct {
	ExerciseID string `json:"exercise_id"`
	Name       string `json:"name"`
	Total      int64  `json:"total"`
	Goal       int    `json:"goal,omitempty"`
}

// Summary is a single player's progress across all exercises
type Summary struct {
	PlayerID int64        `json:"player_id"`
	Rows     []SummaryRow `json:"rows"`
}

// SummaryFromModel converts summary rows for a player
func SummaryFromModel(playerID model.PlayerID, rows []model.SummaryRow) Summary {
	out := Summary{
		PlayerID: int64(playerID),
		Rows:     make([]SummaryRow, len(rows)),
	}
	for i, row := range rows {
		out.Rows[i] = SummaryRow{
			ExerciseID: string(row.ExerciseID),
			Name:       row.Name,
			Total:      row.Total,
			Goal:       row.Goal,
		}
	}
	return out
}

// Leaderboard is the dense cross-player matrix view
type Leaderboard struct {
	PlayerIDs     []int64   `json:"player_ids"`
	PlayerLabels  []string  `json:"player_labels"`
	ExerciseIDs   []string  `json:"exercise_ids"`
	ExerciseNames []string  `json:"exercise_names"`
	Goals         []int     `json:"goals"`
	Cells         [][]int64 `json:"cells"`
}

// LeaderboardFromModel converts a model.LeaderboardMatrix
func LeaderboardFromModel(m *model.LeaderboardMatrix) Leaderboard {
	out := Leaderboard{
		PlayerIDs:     make([]int64, len(m.PlayerIDs)),
		PlayerLabels:  m.PlayerLabels,
		ExerciseIDs:   make([]string, len(m.ExerciseIDs)),
		ExerciseNames: m.ExerciseNames,
		Goals:         m.Goals,
		Cells:         m.Cells,
	}
	for i, id := range m.PlayerIDs {
		out.PlayerIDs[i] = int64(id)
	}
	for i, id := range m.ExerciseIDs {
		out.ExerciseIDs[i] = string(id)
	}
	return out
}

// Exercise is a catalog entry in API responses
type Exercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
	Goal  int    `json:"goal,omitempty"`
}

// ExercisesFromModel converts a detail map into a name-ordered list
func ExercisesFromModel(details map[model.ExerciseID]model.ExerciseDef) []Exercise {
	out := make([]Exercise, 0, len(details))
	for id, def := range details {
		out = append(out, Exercise{
			ID:    string(id),
			Name:  def.Name,
			Alias: def.Alias,
			Goal:  def.Goal,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
