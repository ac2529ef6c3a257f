package report

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/giufus/workout-streak-bot/internal/model"
)

// TextRenderer renders views as aligned plain-text tables
type TextRenderer struct{}

// NewTextRenderer creates a new text renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

var _ Renderer = (*TextRenderer)(nil)

func (r *TextRenderer) RenderSummary(title string, rows []model.SummaryRow) (*Artifact, error) {
	if len(rows) == 0 {
		return nil, ErrNothingToRender
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf)

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Exercise\tTotal\tGoal")
	for _, row := range rows {
		goal := "-"
		if row.Goal > 0 {
			goal = fmt.Sprintf("%d", row.Goal)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", row.Name, row.Total, goal)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return &Artifact{ContentType: "text/plain; charset=utf-8", Data: buf.Bytes()}, nil
}

func (r *TextRenderer) RenderLeaderboard(title string, m *model.LeaderboardMatrix) (*Artifact, error) {
	if m == nil || m.IsEmpty() {
		return nil, ErrNothingToRender
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf)

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "Exercise")
	for _, label := range m.PlayerLabels {
		fmt.Fprintf(w, "\t%s", label)
	}
	fmt.Fprintln(w)

	for i, name := range m.ExerciseNames {
		fmt.Fprint(w, name)
		for j := range m.PlayerIDs {
			fmt.Fprintf(w, "\t%d", m.Cells[i][j])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return &Artifact{ContentType: "text/plain; charset=utf-8", Data: buf.Bytes()}, nil
}
