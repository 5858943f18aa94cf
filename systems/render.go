package systems

import (
	"math"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer draws each player as a tile-sized square with a one-pixel eye
// on the side it last moved towards.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		data := components.Player.Get(entry)
		if data.Player == nil {
			return
		}

		size := float32(cfg.Tiles.Size)
		// Positions are whole pixels between moves, but Place can leave a
		// fraction; snap so the sprite never straddles two pixels.
		x := float32(math.Floor(data.X))
		y := float32(math.Floor(data.Y))
		vector.FillRect(screen, x, y, size, size, cfg.Colors.Player, false)

		eyeX := x + size - 3
		if data.Facing < 0 {
			eyeX = x + 2
		}
		vector.FillRect(screen, eyeX, y+2, 1, 2, cfg.Colors.Background, false)
	})
}
