package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space mirrors the level's solid tiles and the player box for the debug
// overlay. Movement never queries it.
var Space = donburi.NewComponentType[resolv.Space]()
