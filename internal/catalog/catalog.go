package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/giufus/workout-streak-bot/internal/model"
)

// ErrInvalidConfig is returned when the exercise definition source is
// malformed, empty, or fails validation. Fatal at startup.
var ErrInvalidConfig = errors.New("invalid exercise configuration")

// Catalog is the immutable set of exercise definitions for a process run.
// Alias lookup is case-insensitive and O(1) after construction.
type Catalog struct {
	exercises map[model.ExerciseID]model.ExerciseDef
	byAlias   map[string]model.ExerciseID
}

// fileDef is the on-disk shape of a single exercise definition
type fileDef struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
	Goal  *int   `json:"goal"`
}

// Load reads exercise definitions from a JSON file.
// The file is a mapping of exercise id to {name, alias, goal}; unknown or
// missing fields are rejected rather than defaulted.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var defs map[model.ExerciseID]fileDef
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return build(defs)
}

// Default returns the built-in exercise set used when no catalog file is
// configured
func Default() *Catalog {
	goals := func(g int) *int { return &g }
	c, err := build(map[model.ExerciseID]fileDef{
		"plank":    {Name: "Plank (Seconds)", Alias: "plk", Goal: goals(300)},
		"rope":     {Name: "Rope Skipping (Mins)", Alias: "rop", Goal: goals(60)},
		"pushup":   {Name: "Push-Ups", Alias: "psh", Goal: goals(500)},
		"squat":    {Name: "Squats", Alias: "sqt", Goal: goals(1000)},
		"abs":      {Name: "Abs Circuit (Reps)", Alias: "abs", Goal: goals(1000)},
		"jab":      {Name: "Jabs", Alias: "jab", Goal: goals(2000)},
		"uppercut": {Name: "Uppercuts", Alias: "upc", Goal: goals(1000)},
		"straight": {Name: "Straights", Alias: "str", Goal: goals(2000)},
	})
	if err != nil {
		// The built-in set is validated by tests; this cannot happen at runtime
		panic(err)
	}
	return c
}

func build(defs map[model.ExerciseID]fileDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no exercises defined", ErrInvalidConfig)
	}

	c := &Catalog{
		exercises: make(map[model.ExerciseID]model.ExerciseDef, len(defs)),
		byAlias:   make(map[string]model.ExerciseID, len(defs)),
	}

	for id, def := range defs {
		if id == "" {
			return nil, fmt.Errorf("%w: empty exercise id", ErrInvalidConfig)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("%w: exercise %q has no name", ErrInvalidConfig, id)
		}
		if def.Alias == "" {
			return nil, fmt.Errorf("%w: exercise %q has no alias", ErrInvalidConfig, id)
		}
		if def.Goal == nil {
			return nil, fmt.Errorf("%w: exercise %q has no goal (use 0 for none)", ErrInvalidConfig, id)
		}
		if *def.Goal < 0 {
			return nil, fmt.Errorf("%w: exercise %q has negative goal %d", ErrInvalidConfig, id, *def.Goal)
		}

		alias := strings.ToLower(def.Alias)
		if existing, ok := c.byAlias[alias]; ok {
			return nil, fmt.Errorf("%w: alias %q used by both %q and %q", ErrInvalidConfig, alias, existing, id)
		}

		c.exercises[id] = model.ExerciseDef{
			ID:    id,
			Name:  def.Name,
			Alias: alias,
			Goal:  *def.Goal,
		}
		c.byAlias[alias] = id
	}

	return c, nil
}

// ResolveAlias maps a command alias to its exercise id, case-insensitively
func (c *Catalog) ResolveAlias(alias string) (model.ExerciseID, error) {
	id, ok := c.byAlias[strings.ToLower(alias)]
	if !ok {
		return "", model.ErrAliasNotFound
	}
	return id, nil
}

// Get returns the definition for an exercise id
func (c *Catalog) Get(id model.ExerciseID) (model.ExerciseDef, error) {
	def, ok := c.exercises[id]
	if !ok {
		return model.ExerciseDef{}, model.ErrExerciseNotFound
	}
	return def, nil
}

// Exercises returns all definitions keyed by id
func (c *Catalog) Exercises() map[model.ExerciseID]model.ExerciseDef {
	out := make(map[model.ExerciseID]model.ExerciseDef, len(c.exercises))
	for id, def := range c.exercises {
		out[id] = def
	}
	return out
}

// SortedByName returns all definitions ordered by display name.
// This is the canonical ordering for summaries and leaderboards.
func (c *Catalog) SortedByName() []model.ExerciseDef {
	defs := make([]model.ExerciseDef, 0, len(c.exercises))
	for _, def := range c.exercises {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Len returns the number of defined exercises
func (c *Catalog) Len() int {
	return len(c.exercises)
}
