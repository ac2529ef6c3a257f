package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giufus/workout-streak-bot/internal/model"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Equal(t, 8, cat.Len())

	def, err := cat.Get("plank")
	require.NoError(t, err)
	assert.Equal(t, "Plank (Seconds)", def.Name)
	assert.Equal(t, "plk", def.Alias)
	assert.Equal(t, 300, def.Goal)
	assert.True(t, def.HasGoal())
}

func TestLoadValidFile(t *testing.T) {
	path := writeCatalogFile(t, `{
		"yoga": {"name": "Yoga (Mins)", "alias": "yog", "goal": 120},
		"walk": {"name": "Walking (Steps)", "alias": "wlk", "goal": 0}
	}`)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	def, err := cat.Get("walk")
	require.NoError(t, err)
	assert.False(t, def.HasGoal())
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `nope`},
		{"empty set", `{}`},
		{"unknown field", `{"yoga": {"name": "Yoga", "alias": "yog", "goal": 1, "extra": true}}`},
		{"missing name", `{"yoga": {"alias": "yog", "goal": 1}}`},
		{"missing alias", `{"yoga": {"name": "Yoga", "goal": 1}}`},
		{"missing goal", `{"yoga": {"name": "Yoga", "alias": "yog"}}`},
		{"negative goal", `{"yoga": {"name": "Yoga", "alias": "yog", "goal": -1}}`},
		{"duplicate alias", `{
			"yoga": {"name": "Yoga", "alias": "fit", "goal": 1},
			"pilates": {"name": "Pilates", "alias": "FIT", "goal": 1}
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalogFile(t, tt.content)
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResolveAliasCaseInsensitive(t *testing.T) {
	cat := Default()

	for _, alias := range []string{"plk", "PLK", "Plk"} {
		id, err := cat.ResolveAlias(alias)
		require.NoError(t, err)
		assert.Equal(t, model.ExerciseID("plank"), id)
	}
}

func TestResolveAliasUnknown(t *testing.T) {
	cat := Default()

	_, err := cat.ResolveAlias("nope")
	assert.ErrorIs(t, err, model.ErrAliasNotFound)
}

func TestGetUnknownExercise(t *testing.T) {
	cat := Default()

	_, err := cat.Get("nonexistent")
	assert.ErrorIs(t, err, model.ErrExerciseNotFound)
}

func TestSortedByName(t *testing.T) {
	cat := Default()

	defs := cat.SortedByName()
	require.Len(t, defs, cat.Len())
	for i := 1; i < len(defs); i++ {
		assert.LessOrEqual(t, defs[i-1].Name, defs[i].Name)
	}
}

func TestExercisesReturnsCopy(t *testing.T) {
	cat := Default()

	exercises := cat.Exercises()
	delete(exercises, "plank")

	_, err := cat.Get("plank")
	assert.NoError(t, err)
}
