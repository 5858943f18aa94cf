package factory

import (
	"github.com/automoto/tilestep/archetypes"
	"github.com/automoto/tilestep/components"
	"github.com/automoto/tilestep/tags"
	"github.com/automoto/tilestep/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a debug box for one solid tile.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateWalls adds one debug box per solid tile of grid.
func CreateWalls(ecs *ecs.ECS, grid *tilemap.Grid) int {
	size := float64(grid.TileSize())
	cells := grid.SolidCells()
	for _, c := range cells {
		x, y := grid.WorldPos(c)
		CreateWall(ecs, x, y, size, size)
	}
	return len(cells)
}
