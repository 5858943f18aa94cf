package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// player's movement state. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Colors.Overlay
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			}
			outline(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		data := components.Player.Get(entry)
		if data.Player == nil {
			return
		}

		grounded := data.Grounded()
		if grounded {
			size := float64(cfg.Tiles.Size)
			outline(screen, data.X, data.Y+size, size, 1, cfg.Colors.Grounded)
		}

		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"pos %.0f,%.0f\nrem %+.2f,%+.2f\nvel %+.2f,%+.2f\nground %v",
			data.X, data.Y, data.RemX, data.RemY, data.VX, data.VY, grounded,
		))
	})
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
