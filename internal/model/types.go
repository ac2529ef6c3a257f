package model

import (
	"fmt"
	"time"
)

// ExerciseID is the stable internal key for an exercise
type ExerciseID string

// PlayerID is the external numeric identity of a player (e.g. a chat user ID)
type PlayerID int64

// ExerciseDef describes a single tracked exercise.
// Definitions are loaded once at startup and never mutated afterwards.
type ExerciseDef struct {
	ID    ExerciseID `json:"id"`
	Name  string     `json:"name"`
	Alias string     `json:"alias"`
	// Goal is the target total for the exercise. 0 means no goal is set.
	Goal int `json:"goal"`
}

// HasGoal reports whether a meaningful goal is configured
func (d ExerciseDef) HasGoal() bool {
	return d.Goal > 0
}

// PlayerInfo holds the display fields supplied by the command layer
// on every mutating action
type PlayerInfo struct {
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// DisplayName derives the preferred display name for a player:
// handle, then given name, then a generic fallback
func (i PlayerInfo) DisplayName(id PlayerID) string {
	if i.Username != "" {
		return "@" + i.Username
	}
	if i.FirstName != "" {
		return i.FirstName
	}
	return fmt.Sprintf("User %d", id)
}

// PlayerDisplay is the stored display state for a player
type PlayerDisplay struct {
	DisplayName string
	// LastUpdate is the time of the player's most recent mutating action.
	// Zero when never recorded.
	LastUpdate time.Time
}

// ProgressResult is the outcome of recording progress for one exercise
type ProgressResult struct {
	ExerciseID   ExerciseID
	ExerciseName string
	NewTotal     int64
	// Goal is the configured goal for the exercise (0 when none)
	Goal int
	// GoalCrossed is true only on the specific update that moved the total
	// from below the goal to at or above it
	GoalCrossed bool
}

// SummaryRow is one line of a single-player summary, ordered by exercise name
type SummaryRow struct {
	ExerciseID ExerciseID
	Name       string
	Total      int64
	Goal       int
}

// LeaderboardMatrix is the dense all-players x all-exercises view.
// Cells is indexed [exercise][player], matching the order of ExerciseIDs
// and PlayerIDs; absent scores are 0.
type LeaderboardMatrix struct {
	PlayerIDs     []PlayerID
	PlayerLabels  []string
	ExerciseIDs   []ExerciseID
	ExerciseNames []string
	Goals         []int
	Cells         [][]int64
}

// IsEmpty reports whether there is nothing to render
func (m *LeaderboardMatrix) IsEmpty() bool {
	return len(m.PlayerIDs) == 0 || len(m.ExerciseIDs) == 0
}
