package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/dependencies/mocks"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/storage/memory"
	"github.com/giufus/workout-streak-bot/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	catalog *catalog.Catalog
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.catalog = catalog.Default()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.catalog, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.EnsureSeeded(s.ctx, s.catalog))
}

func (s *ServiceSuite) record(playerID model.PlayerID, exerciseID model.ExerciseID, amount int64) model.ProgressResult {
	result, err := s.service.RecordProgress(s.ctx, playerID, model.PlayerInfo{FirstName: "Alice"}, exerciseID, amount)
	s.Require().NoError(err)
	return result
}

// Goal crossing

func (s *ServiceSuite) TestCrossingFiresExactlyOnce() {
	// plank goal is 300
	r := s.record(1, "plank", 200)
	s.False(r.GoalCrossed)

	r = s.record(1, "plank", 150)
	s.True(r.GoalCrossed)
	s.Equal(int64(350), r.NewTotal)

	r = s.record(1, "plank", 100)
	s.False(r.GoalCrossed)
}

func (s *ServiceSuite) TestCrossingOnExactGoal() {
	r := s.record(1, "plank", 300)
	s.True(r.GoalCrossed)
	s.Equal(int64(300), r.NewTotal)
}

func (s *ServiceSuite) TestSingleUpdateOvershootsGoal() {
	r := s.record(1, "rope", 500)
	s.True(r.GoalCrossed)
}

func (s *ServiceSuite) TestZeroGoalNeverCrosses() {
	path := filepath.Join(s.T().TempDir(), "catalog.json")
	defs := `{"walk": {"name": "Walking (Steps)", "alias": "wlk", "goal": 0}}`
	s.Require().NoError(os.WriteFile(path, []byte(defs), 0600))

	cat, err := catalog.Load(path)
	s.Require().NoError(err)

	store := memory.New()
	s.Require().NoError(store.EnsureSeeded(s.ctx, cat))
	svc := New(store, cat, s.clock, testutil.NopLogger())

	r, err := svc.RecordProgress(s.ctx, 1, model.PlayerInfo{}, "walk", 1000000)
	s.Require().NoError(err)
	s.False(r.GoalCrossed)
	s.Equal(0, r.Goal)
}

// Totals

func (s *ServiceSuite) TestTotalsAccumulate() {
	amounts := []int64{10, 25, 5, 60}
	var sum int64
	for _, a := range amounts {
		r := s.record(1, "squat", a)
		sum += a
		s.Equal(sum, r.NewTotal)
	}

	total, err := s.storage.GetScore(s.ctx, 1, "squat")
	s.Require().NoError(err)
	s.Equal(sum, total)
}

func (s *ServiceSuite) TestPlayersAreIndependent() {
	s.record(1, "plank", 100)
	s.record(2, "plank", 40)

	t1, err := s.storage.GetScore(s.ctx, 1, "plank")
	s.Require().NoError(err)
	t2, err := s.storage.GetScore(s.ctx, 2, "plank")
	s.Require().NoError(err)
	s.Equal(int64(100), t1)
	s.Equal(int64(40), t2)
}

// Validation

func (s *ServiceSuite) TestRejectsNonPositiveAmount() {
	_, err := s.service.RecordProgress(s.ctx, 1, model.PlayerInfo{}, "plank", 0)
	s.ErrorIs(err, model.ErrInvalidAmount)

	_, err = s.service.RecordProgress(s.ctx, 1, model.PlayerInfo{}, "plank", -10)
	s.ErrorIs(err, model.ErrInvalidAmount)

	// Nothing was written
	total, err := s.storage.GetScore(s.ctx, 1, "plank")
	s.Require().NoError(err)
	s.Equal(int64(0), total)
}

func (s *ServiceSuite) TestRejectsUnknownExercise() {
	_, err := s.service.RecordProgress(s.ctx, 1, model.PlayerInfo{}, "nonexistent", 10)
	s.ErrorIs(err, model.ErrExerciseNotFound)
}

// Player metadata

func (s *ServiceSuite) TestRecordTouchesPlayerInfo() {
	s.record(1, "plank", 10)

	display, err := s.storage.GetPlayerDisplay(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Alice", display.DisplayName)
	s.Equal(s.clock.Now().Unix(), display.LastUpdate.Unix())
}

// Reset

func (s *ServiceSuite) TestResetExercise() {
	s.record(1, "plank", 100)

	err := s.service.ResetExercise(s.ctx, 1, model.PlayerInfo{FirstName: "Alice"}, "plank")
	s.Require().NoError(err)

	total, err := s.storage.GetScore(s.ctx, 1, "plank")
	s.Require().NoError(err)
	s.Equal(int64(0), total)
}

func (s *ServiceSuite) TestResetAlreadyZeroIsNoop() {
	err := s.service.ResetExercise(s.ctx, 1, model.PlayerInfo{}, "plank")
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestResetUnknownExercise() {
	err := s.service.ResetExercise(s.ctx, 1, model.PlayerInfo{}, "nonexistent")
	s.ErrorIs(err, model.ErrExerciseNotFound)
}

func (s *ServiceSuite) TestCrossingCanRefireAfterReset() {
	r := s.record(1, "plank", 300)
	s.True(r.GoalCrossed)

	s.Require().NoError(s.service.ResetExercise(s.ctx, 1, model.PlayerInfo{}, "plank"))

	r = s.record(1, "plank", 300)
	s.True(r.GoalCrossed)
}

// Hard reset

func (s *ServiceSuite) TestHardReset() {
	s.record(1, "plank", 100)
	s.record(2, "squat", 50)

	s.Require().NoError(s.service.HardReset(s.ctx))

	all, err := s.storage.GetAllPlayerScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)

	// Catalog survives
	details, err := s.storage.ListExerciseDetails(s.ctx)
	s.Require().NoError(err)
	s.Len(details, s.catalog.Len())
}
