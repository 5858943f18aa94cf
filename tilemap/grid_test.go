package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		TileSize: 8,
		Empty:    0,
		Spawn:    1,
		Solid:    []int{2, 3, 4, 5},
	}
}

func TestGridClassification(t *testing.T) {
	g := NewGrid(4, 3, testOptions())
	for id := 0; id <= 6; id++ {
		g.Set(id%4, id/4, id)
	}

	tests := []struct {
		name     string
		col, row int
		solid    bool
	}{
		{"empty", 0, 0, false},
		{"spawn marker", 1, 0, false},
		{"wall 2", 2, 0, true},
		{"wall 3", 3, 0, true},
		{"wall 4", 0, 1, true},
		{"wall 5", 1, 1, true},
		{"unknown id", 2, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.solid, g.IsSolid(tt.col, tt.row))
		})
	}
}

func TestGridBoundaryPolicy(t *testing.T) {
	open := NewGrid(2, 2, testOptions())
	opts := testOptions()
	opts.Boundary = BoundaryWall
	walled := NewGrid(2, 2, opts)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, -5}} {
		assert.False(t, open.IsSolid(c.Col, c.Row), "open boundary at %v", c)
		assert.True(t, walled.IsSolid(c.Col, c.Row), "wall boundary at %v", c)
		assert.Equal(t, 0, walled.At(c.Col, c.Row))
	}
	assert.False(t, walled.IsSolid(0, 0))
}

func TestGridSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, testOptions())
	assert.False(t, g.Set(2, 0, 3))
	assert.True(t, g.Set(1, 1, 3))
	assert.Equal(t, 3, g.At(1, 1))
}

func TestNewGridPanicsOnBadTileSize(t *testing.T) {
	opts := testOptions()
	opts.TileSize = 0
	assert.Panics(t, func() { NewGrid(1, 1, opts) })
	opts.TileSize = -8
	assert.Panics(t, func() { NewGrid(1, 1, opts) })
}

func TestNewGridFillsNonZeroEmpty(t *testing.T) {
	opts := testOptions()
	opts.Empty = 9
	g := NewGrid(2, 1, opts)
	assert.Equal(t, 9, g.At(0, 0))
	assert.Equal(t, 9, g.At(1, 0))
}

func TestFindAndClear(t *testing.T) {
	g := NewGrid(6, 4, testOptions())
	g.Set(3, 2, 1)

	cell, ok := g.FindSpawn()
	require.True(t, ok)
	assert.Equal(t, Cell{Col: 3, Row: 2}, cell)
	assert.Equal(t, 0, g.At(3, 2))
	assert.False(t, g.IsSolid(3, 2))

	_, ok = g.FindSpawn()
	assert.False(t, ok, "marker must be gone after the first scan")
}

func TestFindAndClearLastMarkerWins(t *testing.T) {
	g := NewGrid(4, 4, testOptions())
	g.Set(0, 0, 1)
	g.Set(2, 3, 1)
	g.Set(3, 1, 1)

	cell, ok := g.FindAndClear(1)
	require.True(t, ok)
	assert.Equal(t, Cell{Col: 2, Row: 3}, cell)
	for _, c := range []Cell{{0, 0}, {2, 3}, {3, 1}} {
		assert.Equal(t, 0, g.At(c.Col, c.Row))
	}
}

func TestCellAtFloorsNegatives(t *testing.T) {
	g := NewGrid(1, 1, testOptions())
	assert.Equal(t, Cell{Col: 0, Row: 0}, g.CellAt(7.9, 0))
	assert.Equal(t, Cell{Col: 1, Row: 2}, g.CellAt(8, 16))
	assert.Equal(t, Cell{Col: -1, Row: -1}, g.CellAt(-0.5, -8))
	x, y := g.WorldPos(Cell{Col: 3, Row: 2})
	assert.Equal(t, 24.0, x)
	assert.Equal(t, 16.0, y)
}

func TestParseBoundary(t *testing.T) {
	b, err := ParseBoundary("wall")
	require.NoError(t, err)
	assert.Equal(t, BoundaryWall, b)
	assert.Equal(t, "wall", b.String())

	b, err = ParseBoundary("")
	require.NoError(t, err)
	assert.Equal(t, BoundaryOpen, b)

	_, err = ParseBoundary("lava")
	assert.Error(t, err)
}
