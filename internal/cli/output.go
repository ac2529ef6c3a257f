package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Progress:
		o.printProgress(v)
	case Summary:
		o.printSummary(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case []Exercise:
		o.printExercises(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Progress response type (matches API)
type Progress struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	NewTotal     int64  `json:"new_total"`
	Goal         int    `json:"goal,omitempty"`
	GoalCrossed  bool   `json:"goal_crossed"`
}

// SummaryRow response type
type SummaryRow struct {
	ExerciseID string `json:"exercise_id"`
	Name       string `json:"name"`
	Total      int64  `json:"total"`
	Goal       int    `json:"goal,omitempty"`
}

// Summary response type
type Summary struct {
	PlayerID int64        `json:"player_id"`
	Rows     []SummaryRow `json:"rows"`
}

// Leaderboard response type
type Leaderboard struct {
	PlayerIDs     []int64   `json:"player_ids"`
	PlayerLabels  []string  `json:"player_labels"`
	ExerciseIDs   []string  `json:"exercise_ids"`
	ExerciseNames []string  `json:"exercise_names"`
	Goals         []int     `json:"goals"`
	Cells         [][]int64 `json:"cells"`
}

// Exercise response type
type Exercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
	Goal  int    `json:"goal,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printProgress(p Progress) {
	fmt.Printf("%s: %d", p.ExerciseName, p.NewTotal)
	if p.Goal > 0 {
		fmt.Printf(" / %d", p.Goal)
	}
	fmt.Println()
	if p.GoalCrossed {
		fmt.Println("Goal reached!")
	}
}

func (o *Output) printSummary(s Summary) {
	fmt.Printf("Player %d:\n", s.PlayerID)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXERCISE\tTOTAL\tGOAL")
	for _, row := range s.Rows {
		goal := "-"
		if row.Goal > 0 {
			goal = fmt.Sprintf("%d", row.Goal)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", row.Name, row.Total, goal)
	}
	_ = w.Flush()
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.PlayerIDs) == 0 {
		fmt.Println("No players have logged any progress yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "EXERCISE")
	for _, label := range l.PlayerLabels {
		fmt.Fprintf(w, "\t%s", label)
	}
	fmt.Fprintln(w)
	for i, name := range l.ExerciseNames {
		fmt.Fprint(w, name)
		for _, total := range l.Cells[i] {
			fmt.Fprintf(w, "\t%d", total)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

func (o *Output) printExercises(exercises []Exercise) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tNAME\tGOAL")
	for _, e := range exercises {
		goal := "-"
		if e.Goal > 0 {
			goal = fmt.Sprintf("%d", e.Goal)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Alias, e.Name, goal)
	}
	_ = w.Flush()
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
