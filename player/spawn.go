package player

import (
	"github.com/automoto/tilestep/physics"
	"github.com/automoto/tilestep/tilemap"
)

// NewAtSpawn creates a player on grid at the spawn marker, clearing the
// marker so it is neither drawn nor collided with. Without a marker the
// player starts at (fallbackX, fallbackY) and found is false.
func NewAtSpawn(grid *tilemap.Grid, in Input, tuning Tuning, fallbackX, fallbackY float64) (p *Player, found bool) {
	p = New(physics.NewProbe(grid, grid.TileSize()), in, tuning, fallbackX, fallbackY)

	cell, found := grid.FindSpawn()
	if found {
		x, y := grid.WorldPos(cell)
		p.Place(x, y)
	}
	return p, found
}
