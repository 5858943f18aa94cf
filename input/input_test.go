package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateEdges(t *testing.T) {
	var st State

	st.Advance(Hold(ActionJump))
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, st.Action(ActionJump))

	st.Advance(Hold(ActionJump))
	assert.Equal(t, ActionState{Pressed: true}, st.Action(ActionJump), "held, not fresh")

	st.Advance(Hold())
	assert.Equal(t, ActionState{JustReleased: true}, st.Action(ActionJump))

	st.Advance(Hold())
	assert.Equal(t, ActionState{}, st.Action(ActionJump))
}

func TestScriptStep(t *testing.T) {
	s := NewScript(Hold(ActionMoveRight)).Repeat(Hold(ActionMoveRight, ActionJump), 2)
	require.Equal(t, 3, s.Len())

	var st State
	s.Step(&st)
	assert.True(t, st.IsHeld(ActionMoveRight))
	assert.False(t, st.IsHeld(ActionJump))

	s.Step(&st)
	assert.True(t, st.JustPressed(ActionJump))
	s.Step(&st)
	assert.False(t, st.JustPressed(ActionJump))
	assert.True(t, s.Done())

	s.Step(&st)
	assert.Equal(t, Frame{}, st.Current, "exhausted scripts release everything")

	s.Rewind()
	assert.False(t, s.Done())
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("R*2 RJ .*3 L")
	require.NoError(t, err)
	require.Equal(t, 7, s.Len())

	want := []Frame{
		Hold(ActionMoveRight),
		Hold(ActionMoveRight),
		Hold(ActionMoveRight, ActionJump),
		{}, {}, {},
		Hold(ActionMoveLeft),
	}
	var st State
	for i, f := range want {
		s.Step(&st)
		assert.Equal(t, f, st.Current, "frame %d", i)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, text := range []string{"X", "R*", "R*-1", "R*two"} {
		_, err := ParseScript(text)
		assert.Error(t, err, text)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "jump", ActionJump.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
