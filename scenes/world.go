package scenes

import (
	"sync"

	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/systems"
	"github.com/automoto/tilestep/systems/factory"

	"github.com/automoto/tilestep/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	in := systems.GetOrCreateInput(ps.ecs)
	if systems.GetAction(in, input.ActionRestart).JustPressed && ps.sceneChanger != nil {
		logrus.Info("restarting level")
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// World exposes the scene's ECS, configuring it on first use.
func (ps *PlatformerScene) World() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first; the player reads this frame's state during its update.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(ps.ecs)
	grid := components.Level.Get(level).Grid

	// Now create the space for the debug overlay using the level's dimensions.
	w, h := grid.PixelSize()
	factory.CreateSpace(ps.ecs, w, h, grid.TileSize(), grid.TileSize())
	factory.CreateWalls(ps.ecs, grid)

	in := systems.GetOrCreateInput(ps.ecs)
	factory.CreatePlayer(ps.ecs, grid, in.State)
}
