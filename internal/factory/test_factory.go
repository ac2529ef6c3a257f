package factory

import (
	"time"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/dependencies/mocks"
	"github.com/giufus/workout-streak-bot/internal/storage/memory"
	"github.com/giufus/workout-streak-bot/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	cat := catalog.Default()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, cat, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
