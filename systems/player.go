package systems

import (
	"github.com/automoto/tilestep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one movement step for every player and keeps its debug
// box in sync. Must run AFTER UpdateInput.
func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry) {
	data := components.Player.Get(playerEntry)
	if data.Player == nil {
		return
	}

	data.Update()

	if data.VX > 0 {
		data.Facing = 1
	} else if data.VX < 0 {
		data.Facing = -1
	}

	if playerEntry.HasComponent(components.Object) {
		components.Object.Get(playerEntry).MoveTo(data.X, data.Y)
	}
}
