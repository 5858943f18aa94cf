package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Validate())
	assert.Equal(t, 0.2, Physics.Gravity)
	assert.Equal(t, 2.0, Physics.JumpPower)
	assert.Equal(t, 8, Tiles.Size)
	assert.Equal(t, []int{2, 3, 4, 5}, Tiles.Solid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
		errMsg string
	}{
		{"zero tile size", func() { Tiles.Size = 0 }, "tile size"},
		{"negative tile size", func() { Tiles.Size = -8 }, "tile size"},
		{"no solids", func() { Tiles.Solid = nil }, "solid tile set"},
		{"solid spawn", func() { Tiles.Solid = []int{1, 2} }, "both solid"},
		{"empty is spawn", func() { Tiles.Spawn = Tiles.Empty }, "empty and spawn"},
		{"bad boundary", func() { Tiles.Boundary = "lava" }, "boundary"},
		{"zero width", func() { C.Width = 0 }, "window size"},
		{"zero scale", func() { C.Scale = 0 }, "scale"},
		{"zero tps", func() { C.TPS = 0 }, "tps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			tt.mutate()
			err := Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Panics(t, MustValidate)
		})
	}
}

func TestLoadReaderYAML(t *testing.T) {
	t.Cleanup(Reset)

	err := LoadReader(strings.NewReader(`
physics:
  gravity: 0.5
  jump_power: 3
tiles:
  solid: [7, 8]
  boundary: wall
window:
  width: 256
`), "yaml")
	require.NoError(t, err)

	assert.Equal(t, 0.5, Physics.Gravity)
	assert.Equal(t, 3.0, Physics.JumpPower)
	assert.Equal(t, 0.7, Physics.RisingGravityScale, "unset keys keep their defaults")
	assert.Equal(t, []int{7, 8}, Tiles.Solid)
	assert.Equal(t, "wall", Tiles.Boundary)
	assert.Equal(t, 256, C.Width)
	assert.Equal(t, 128, C.Height)
}

func TestLoadReaderRejectsInvalid(t *testing.T) {
	t.Cleanup(Reset)
	err := LoadReader(strings.NewReader("tiles:\n  size: 0\n"), "yaml")
	assert.ErrorContains(t, err, "tile size")
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte("[physics]\ngravity = 0.3\n"), 0o644))
	t.Setenv("TILESTEP_PHYSICS_JUMP_POWER", "4")

	require.NoError(t, Load(path))
	assert.Equal(t, 0.3, Physics.Gravity)
	assert.Equal(t, 4.0, Physics.JumpPower)
}

func TestLoadMissingFile(t *testing.T) {
	t.Cleanup(Reset)
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
