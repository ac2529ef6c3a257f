package report

import (
	"errors"

	"github.com/giufus/workout-streak-bot/internal/model"
)

// ErrNothingToRender is returned when a view has no rows or no players;
// callers should report "no progress yet" instead of an artifact.
var ErrNothingToRender = errors.New("nothing to render")

// Artifact is an opaque renderable produced from an aggregated view
type Artifact struct {
	ContentType string
	Data        []byte
}

// Renderer turns aggregated views into renderable artifacts. The engine
// only depends on this contract; a bitmap chart renderer can be substituted
// for the default text renderer without touching the ledger or aggregation.
type Renderer interface {
	// RenderSummary renders a single player's ordered summary rows
	RenderSummary(title string, rows []model.SummaryRow) (*Artifact, error)
	// RenderLeaderboard renders the dense cross-player matrix
	RenderLeaderboard(title string, m *model.LeaderboardMatrix) (*Artifact, error)
}
