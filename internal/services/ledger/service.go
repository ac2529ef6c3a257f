package ledger

import (
	"context"
	"log/slog"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/dependencies/clock"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/storage"
)

// Service is the ledger engine: all score mutations go through it.
// It is stateless between calls; shared mutable state lives in storage.
type Service struct {
	storage storage.Storage
	catalog *catalog.Catalog
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ledger service
func New(storage storage.Storage, cat *catalog.Catalog, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		catalog: cat,
		clock:   clock,
		logger:  logger,
	}
}

// RecordProgress adds amount to a player's total for an exercise and reports
// whether this update crossed the exercise's goal.
//
// The goal-crossing decision compares a snapshot read against the post-
// increment total. Two concurrent calls for the same (player, exercise) can
// interleave between the snapshot and the increment and both observe a
// crossing, producing a duplicate notification. This trade-off is deliberate:
// the increment itself is atomic (HINCRBY) so totals are always correct, and
// a server-side script returning old and new in one round trip could make
// crossing detection exactly-once if duplicates ever become a problem.
func (s *Service) RecordProgress(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, exerciseID model.ExerciseID, amount int64) (model.ProgressResult, error) {
	if amount <= 0 {
		return model.ProgressResult{}, model.ErrInvalidAmount
	}

	exercise, err := s.catalog.Get(exerciseID)
	if err != nil {
		return model.ProgressResult{}, err
	}

	oldTotal, err := s.storage.GetScore(ctx, playerID, exerciseID)
	if err != nil {
		return model.ProgressResult{}, err
	}

	if err := s.touchPlayer(ctx, playerID, info); err != nil {
		return model.ProgressResult{}, err
	}

	newTotal, err := s.storage.IncrementScore(ctx, playerID, exerciseID, amount)
	if err != nil {
		return model.ProgressResult{}, err
	}

	result := model.ProgressResult{
		ExerciseID:   exerciseID,
		ExerciseName: exercise.Name,
		NewTotal:     newTotal,
		Goal:         exercise.Goal,
		GoalCrossed:  exercise.HasGoal() && oldTotal < int64(exercise.Goal) && int64(exercise.Goal) <= newTotal,
	}

	s.logger.Info("progress recorded",
		slog.Int64("player_id", int64(playerID)),
		slog.String("exercise_id", string(exerciseID)),
		slog.Int64("amount", amount),
		slog.Int64("old_total", oldTotal),
		slog.Int64("new_total", newTotal),
		slog.Bool("goal_crossed", result.GoalCrossed),
	)

	return result, nil
}

// ResetExercise sets a player's total for an exercise to exactly zero.
// Resetting an already-zero score is a valid no-op. No crossing event is
// ever emitted by a reset.
func (s *Service) ResetExercise(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, exerciseID model.ExerciseID) error {
	if _, err := s.catalog.Get(exerciseID); err != nil {
		return err
	}

	if err := s.touchPlayer(ctx, playerID, info); err != nil {
		return err
	}

	if err := s.storage.SetScore(ctx, playerID, exerciseID, 0); err != nil {
		return err
	}

	s.logger.Info("exercise reset",
		slog.Int64("player_id", int64(playerID)),
		slog.String("exercise_id", string(exerciseID)),
	)
	return nil
}

// HardReset clears all player data and re-seeds the catalog.
// Authorization is the caller's responsibility.
func (s *Service) HardReset(ctx context.Context) error {
	if err := s.storage.HardReset(ctx, s.catalog); err != nil {
		return err
	}
	s.logger.Warn("ledger hard reset")
	return nil
}

// touchPlayer updates display metadata and registers the player.
// Runs before the score mutation; if the mutation then fails, the metadata
// update stands, which is fine because it is idempotent and retryable.
func (s *Service) touchPlayer(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo) error {
	now := s.clock.Now().Unix()
	if err := s.storage.UpsertPlayerInfo(ctx, playerID, info, now); err != nil {
		return err
	}
	return s.storage.RegisterPlayer(ctx, playerID)
}

// Interface for dependency injection
type ServiceInterface interface {
	RecordProgress(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, exerciseID model.ExerciseID, amount int64) (model.ProgressResult, error)
	ResetExercise(ctx context.Context, playerID model.PlayerID, info model.PlayerInfo, exerciseID model.ExerciseID) error
	HardReset(ctx context.Context) error
}

var _ ServiceInterface = (*Service)(nil)
