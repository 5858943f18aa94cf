// Package physics resolves actor movement against a solid tile grid.
//
// Positions are in world pixels. Actors move one whole pixel at a time and
// keep the fractional part of every requested move as a per-axis remainder,
// so sub-pixel velocities still add up to movement over several frames.
package physics

import (
	"fmt"
	"math"
)

// SolidQuery is the only thing the engine needs from a tile map.
type SolidQuery interface {
	IsSolid(col, row int) bool
}

// Probe tests tile-sized boxes against a grid.
type Probe struct {
	grid     SolidQuery
	tileSize int
}

// NewProbe panics on a nil grid or a non-positive tile size.
func NewProbe(grid SolidQuery, tileSize int) *Probe {
	if grid == nil {
		panic("physics: nil grid")
	}
	if tileSize <= 0 {
		panic(fmt.Sprintf("physics: invalid tile size %d", tileSize))
	}
	return &Probe{grid: grid, tileSize: tileSize}
}

func (p *Probe) TileSize() int { return p.tileSize }

// OverlapsSolid reports whether the tile-sized box with its top-left corner
// at (x, y) touches any solid cell. The far edge is x+size-1, so a box
// sitting exactly on a cell boundary spans one cell per axis and a box one
// pixel past it spans two.
func (p *Probe) OverlapsSolid(x, y float64) bool {
	size := float64(p.tileSize)

	col0 := int(math.Floor(x / size))
	row0 := int(math.Floor(y / size))
	col1 := int(math.Floor((x + size - 1) / size))
	row1 := int(math.Floor((y + size - 1) / size))

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if p.grid.IsSolid(col, row) {
				return true
			}
		}
	}
	return false
}

// Grounded reports whether a solid tile lies directly below the box at
// (x, y), one full tile down.
func (p *Probe) Grounded(x, y float64) bool {
	return p.OverlapsSolid(x, y+float64(p.tileSize))
}
