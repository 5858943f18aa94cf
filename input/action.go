// Package input tracks which logical actions are held from frame to frame.
// Device polling lives in systems; this package only keeps state.
package input

// Action represents a logical game action
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionToggleDebug:
		return "debug"
	case ActionRestart:
		return "restart"
	}
	return "unknown"
}

// Frame is the set of actions held during one frame.
type Frame [ActionCount]bool

// Hold returns a frame with the given actions held.
func Hold(actions ...Action) Frame {
	var f Frame
	for _, a := range actions {
		f[a] = true
	}
	return f
}
