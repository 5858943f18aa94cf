package input

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// State stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type State struct {
	Current  Frame
	Previous Frame
}

// Advance swaps buffers: current becomes previous, next becomes current.
func (s *State) Advance(next Frame) {
	s.Previous = s.Current
	s.Current = next
}

func (s *State) IsHeld(a Action) bool {
	return s.Current[a]
}

func (s *State) JustPressed(a Action) bool {
	return s.Current[a] && !s.Previous[a]
}

func (s *State) JustReleased(a Action) bool {
	return !s.Current[a] && s.Previous[a]
}

// Action returns the full ActionState for an action.
func (s *State) Action(a Action) ActionState {
	return ActionState{
		Pressed:      s.IsHeld(a),
		JustPressed:  s.JustPressed(a),
		JustReleased: s.JustReleased(a),
	}
}
