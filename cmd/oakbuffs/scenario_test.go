package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Demo(t *testing.T) {
	sc, err := loadScenario("")
	require.NoError(t, err)

	assert.NotEmpty(t, sc.Name)
	require.NotEmpty(t, sc.Steps)
	for i := 1; i < len(sc.Steps); i++ {
		assert.LessOrEqual(t, sc.Steps[i-1].At, sc.Steps[i].At, "steps sorted by time")
	}
}

func TestLoadScenario_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	data := []byte(`
name: file
steps:
  - {at: 3, action: kill}
  - {at: 1, action: move, pos: [10, 20, 30]}
  - {at: 2, action: map, map: Other_P}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	sc, err := loadScenario(path)
	require.NoError(t, err)
	require.Len(t, sc.Steps, 3)

	assert.Equal(t, ActionMove, sc.Steps[0].Action)
	assert.Equal(t, [3]float64{10, 20, 30}, sc.Steps[0].Pos)
	assert.Equal(t, "Other_P", sc.Steps[1].Map)
	assert.Equal(t, ActionKill, sc.Steps[2].Action)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no steps", `name: x`},
		{"unknown action", `steps: [{at: 0, action: fly}]`},
		{"negative time", `steps: [{at: -1, action: kill}]`},
		{"trigger without name", `steps: [{at: 0, action: trigger}]`},
		{"set without value", `steps: [{at: 0, action: set, name: haste.max_stacks}]`},
		{"move without pos", `steps: [{at: 0, action: move}]`},
		{"short pos", `steps: [{at: 0, action: move, pos: [1, 2]}]`},
		{"map without map", `steps: [{at: 0, action: map}]`},
		{"unknown key", `steps: [{at: 0, action: kill, hostile: true}]`},
		{"fractional value", `steps: [{at: 0, action: set, name: haste.max_stacks, value: 1.5}]`},
		{"not yaml", "steps: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScenario([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
