package aggregate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/storage/memory"
	"github.com/giufus/workout-streak-bot/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	catalog *catalog.Catalog
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.catalog = catalog.Default()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.EnsureSeeded(s.ctx, s.catalog))
}

func (s *ServiceSuite) addScore(playerID model.PlayerID, exerciseID model.ExerciseID, amount int64) {
	s.Require().NoError(s.storage.RegisterPlayer(s.ctx, playerID))
	_, err := s.storage.IncrementScore(s.ctx, playerID, exerciseID, amount)
	s.Require().NoError(err)
}

// Summary tests

func (s *ServiceSuite) TestSummaryCoversWholeCatalog() {
	s.addScore(1, "plank", 120)

	rows, err := s.service.BuildPlayerSummary(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(rows, s.catalog.Len())

	totals := map[model.ExerciseID]int64{}
	for _, row := range rows {
		totals[row.ExerciseID] = row.Total
	}
	s.Equal(int64(120), totals["plank"])
	s.Equal(int64(0), totals["squat"])
}

func (s *ServiceSuite) TestSummaryOrderedByName() {
	rows, err := s.service.BuildPlayerSummary(s.ctx, 1)
	s.Require().NoError(err)
	for i := 1; i < len(rows); i++ {
		s.LessOrEqual(rows[i-1].Name, rows[i].Name)
	}
}

func (s *ServiceSuite) TestSummaryUnknownPlayerIsAllZeros() {
	rows, err := s.service.BuildPlayerSummary(s.ctx, 99)
	s.Require().NoError(err)
	s.Len(rows, s.catalog.Len())
	for _, row := range rows {
		s.Equal(int64(0), row.Total)
	}
}

func (s *ServiceSuite) TestSummaryEmptyCatalog() {
	service := New(memory.New(), testutil.NopLogger())

	rows, err := service.BuildPlayerSummary(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(rows)
}

// Leaderboard tests

func (s *ServiceSuite) TestLeaderboardMatrixIsDense() {
	s.addScore(2, "plank", 100)
	s.addScore(1, "squat", 40)

	m, err := s.service.BuildLeaderboardMatrix(s.ctx)
	s.Require().NoError(err)

	// Players ascending by id, exercises by display name
	s.Equal([]model.PlayerID{1, 2}, m.PlayerIDs)
	s.Len(m.ExerciseIDs, s.catalog.Len())
	s.Require().Len(m.Cells, len(m.ExerciseIDs))

	cells := map[model.ExerciseID]map[model.PlayerID]int64{}
	for i, exID := range m.ExerciseIDs {
		s.Require().Len(m.Cells[i], len(m.PlayerIDs))
		cells[exID] = map[model.PlayerID]int64{}
		for j, playerID := range m.PlayerIDs {
			cells[exID][playerID] = m.Cells[i][j]
		}
	}
	s.Equal(int64(100), cells["plank"][2])
	s.Equal(int64(0), cells["plank"][1])
	s.Equal(int64(40), cells["squat"][1])
}

func (s *ServiceSuite) TestLeaderboardExercisesOrderedByName() {
	s.addScore(1, "plank", 1)

	m, err := s.service.BuildLeaderboardMatrix(s.ctx)
	s.Require().NoError(err)
	for i := 1; i < len(m.ExerciseNames); i++ {
		s.LessOrEqual(m.ExerciseNames[i-1], m.ExerciseNames[i])
	}
}

func (s *ServiceSuite) TestLeaderboardNoPlayers() {
	m, err := s.service.BuildLeaderboardMatrix(s.ctx)
	s.Require().NoError(err)
	s.Empty(m.PlayerIDs)
	s.True(m.IsEmpty())
}

func (s *ServiceSuite) TestLeaderboardRegisteredPlayerWithNoScores() {
	s.Require().NoError(s.storage.RegisterPlayer(s.ctx, 7))

	m, err := s.service.BuildLeaderboardMatrix(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{7}, m.PlayerIDs)
	for _, row := range m.Cells {
		s.Equal(int64(0), row[0])
	}
}

// Label tests

func (s *ServiceSuite) TestPlayerLabelsIncludeLastUpdate() {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	s.addScore(1, "plank", 10)
	s.Require().NoError(s.storage.UpsertPlayerInfo(s.ctx, 1, model.PlayerInfo{Username: "alice"}, now.Unix()))

	m, err := s.service.BuildLeaderboardMatrix(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(m.PlayerLabels, 1)
	s.Contains(m.PlayerLabels[0], "@alice")
	s.Contains(m.PlayerLabels[0], "(Upd: ")
}

func (s *ServiceSuite) TestPlayerLabelFallsBackToGenericName() {
	s.addScore(42, "plank", 10)

	m, err := s.service.BuildLeaderboardMatrix(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(m.PlayerLabels, 1)
	s.Equal("User 42", m.PlayerLabels[0])
}
