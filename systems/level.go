package systems

import (
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears the screen and draws every solid tile as a flat square.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Grid
	if grid == nil {
		return
	}

	size := float32(grid.TileSize())
	for _, c := range grid.SolidCells() {
		x, y := grid.WorldPos(c)
		vector.FillRect(screen, float32(x), float32(y), size, size, cfg.Colors.Wall, false)
	}
}
