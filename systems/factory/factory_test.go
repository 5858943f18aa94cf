package factory

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/tags"
	"github.com/automoto/tilestep/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestCreateLevelFromFallsBackToBuiltin(t *testing.T) {
	e := newECS()
	level := CreateLevelFrom(e, fstest.MapFS{}, "levels/missing.tmx")
	data := components.Level.Get(level)

	require.NotNil(t, data.Grid)
	assert.Equal(t, "builtin", data.Source)
	assert.Equal(t, 16, data.Grid.Width())
}

func TestCreateLevelLoadsEmbeddedTMX(t *testing.T) {
	e := newECS()
	level := CreateLevel(e)
	data := components.Level.Get(level)

	assert.Equal(t, cfg.C.Level, data.Source)
	assert.True(t, data.Grid.IsSolid(0, 0))
}

func TestTileOptionsFollowConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Tiles.Boundary = "wall"
	cfg.Tiles.Solid = []int{9}

	opts := TileOptions()
	assert.Equal(t, tilemap.BoundaryWall, opts.Boundary)
	assert.Equal(t, []int{9}, opts.Solid)

	cfg.Tiles.Boundary = "lava"
	assert.Panics(t, func() { TileOptions() })
}

func TestCreatePlayerAtSpawn(t *testing.T) {
	e := newECS()
	grid := tilemap.NewGrid(6, 4, TileOptions())
	grid.Set(3, 2, cfg.Tiles.Spawn)
	CreateSpace(e, 48, 32, 8, 8)

	entry := CreatePlayer(e, grid, &input.State{})

	data := components.Player.Get(entry)
	assert.Equal(t, 24.0, data.X)
	assert.Equal(t, 16.0, data.Y)
	assert.Equal(t, cfg.Tiles.Empty, grid.At(3, 2))
	assert.True(t, entry.HasComponent(tags.Player))

	obj := components.Object.Get(entry)
	assert.Equal(t, 24.0, obj.X)
	assert.Equal(t, 16.0, obj.Y)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	assert.Len(t, components.Space.Get(spaceEntry).Objects(), 1)
}

func TestCreatePlayerWithoutSpawn(t *testing.T) {
	e := newECS()
	grid := tilemap.NewGrid(4, 4, TileOptions())
	entry := CreatePlayer(e, grid, &input.State{})

	data := components.Player.Get(entry)
	assert.Equal(t, float64(cfg.C.Width)/2, data.X)
	assert.Equal(t, float64(cfg.C.Height)/2, data.Y)
}

func TestPlayerTuningFollowsConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Physics.Gravity = 0.35
	cfg.Physics.JumpPower = 3
	tuning := PlayerTuning()
	assert.Equal(t, 0.35, tuning.Gravity)
	assert.Equal(t, 3.0, tuning.JumpPower)
	assert.Equal(t, 0.7, tuning.RisingGravityScale)
}

func TestCreateWalls(t *testing.T) {
	e := newECS()
	CreateSpace(e, 32, 16, 8, 8)
	grid := tilemap.MustParse("#..#\n####\n", TileOptions())

	n := CreateWalls(e, grid)
	assert.Equal(t, 6, n)

	count := 0
	tags.Wall.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Equal(t, 6, count)

	spaceEntry, _ := components.Space.First(e.World)
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		assert.True(t, obj.HasTags(tags.ResolvSolid))
	}
}
