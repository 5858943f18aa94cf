package factory

import (
	"github.com/automoto/tilestep/archetypes"
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/player"
	"github.com/automoto/tilestep/tags"
	"github.com/automoto/tilestep/tilemap"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerTuning maps the physics config onto the player's tuning.
func PlayerTuning() player.Tuning {
	return player.Tuning{
		Gravity:              cfg.Physics.Gravity,
		JumpPower:            cfg.Physics.JumpPower,
		RisingGravityScale:   cfg.Physics.RisingGravityScale,
		JumpHoldGravityScale: cfg.Physics.JumpHoldGravityScale,
	}
}

// CreatePlayer places the player on the grid's spawn marker (clearing it),
// or in the middle of the screen when the map has none.
func CreatePlayer(ecs *ecs.ECS, grid *tilemap.Grid, in player.Input) *donburi.Entry {
	entry := archetypes.Player.Spawn(ecs)

	p, found := player.NewAtSpawn(grid, in, PlayerTuning(),
		float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)

	logrus.WithFields(logrus.Fields{
		"x":     p.X,
		"y":     p.Y,
		"spawn": found,
	}).Info("player created")

	size := float64(grid.TileSize())
	obj := resolv.NewObject(p.X, p.Y, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Player.SetValue(entry, components.PlayerData{
		Player: p,
		Facing: 1,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
