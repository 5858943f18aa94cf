package components

import (
	"github.com/automoto/tilestep/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*player.Player
	Facing float64 // -1 left, 1 right; only used for drawing
}

var Player = donburi.NewComponentType[PlayerData]()
