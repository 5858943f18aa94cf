package components

import (
	"github.com/automoto/tilestep/input"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// InputData stores the current and previous frame's pressed state for all
// actions, merged across keyboard and gamepads. State is shared with the
// player, which reads it during its own update.
type InputData struct {
	*input.State
	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
