package storage

import (
	"context"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/model"
)

// Storage defines the score store contract.
//
// The store exclusively owns score entries, player info, and the player
// registry. The ledger service is the only writer; aggregation reads are
// not transactionally consistent with concurrent writes.
type Storage interface {
	// EnsureSeeded writes the exercise alias index and per-exercise detail
	// records if and only if they are absent. Idempotent and safe to call
	// concurrently; seeding is detected via the presence of one known
	// exercise's detail record.
	EnsureSeeded(ctx context.Context, cat *catalog.Catalog) error

	// Exercise catalog reads
	GetExerciseDetails(ctx context.Context, id model.ExerciseID) (model.ExerciseDef, error)
	// ListExerciseDetails returns all seeded exercises. An empty map with no
	// error means the alias index is absent, i.e. seeding never ran.
	ListExerciseDetails(ctx context.Context) (map[model.ExerciseID]model.ExerciseDef, error)

	// Score reads. A missing entry is 0, not an error.
	GetScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID) (int64, error)
	GetPlayerScores(ctx context.Context, playerID model.PlayerID) (map[model.ExerciseID]int64, error)
	// GetAllPlayerScores enumerates the player registry and fetches each row.
	// A registered player with an empty row yields an empty map, not omission.
	GetAllPlayerScores(ctx context.Context) (map[model.PlayerID]map[model.ExerciseID]int64, error)

	// IncrementScore atomically adds delta to the score and returns the new
	// total. Atomicity holds at the storage layer (a single fetch-and-add).
	IncrementScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID, delta int64) (int64, error)
	// SetScore unconditionally sets the score (used by reset)
	SetScore(ctx context.Context, playerID model.PlayerID, exerciseID model.ExerciseID, value int64) error

	// Player registry and display metadata
	RegisterPlayer(ctx context.Context, playerID model.PlayerID) error
	UpsertPlayerInfo(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, lastUpdate int64) error
	// GetPlayerDisplay returns the stored display state. A player with no
	// info record gets the generic fallback name and a zero LastUpdate.
	GetPlayerDisplay(ctx context.Context, playerID model.PlayerID) (model.PlayerDisplay, error)

	// HardReset clears all player scores, info, and the registry, then
	// re-seeds the exercise catalog. Privileged maintenance operation.
	HardReset(ctx context.Context, cat *catalog.Catalog) error

	// Close releases the underlying storage client
	Close() error
}
