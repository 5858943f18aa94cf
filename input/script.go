package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Script is a fixed sequence of frames fed into a State one frame at a time.
// Replaying the same script from the same start gives the same trajectory.
type Script struct {
	frames []Frame
	pos    int
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Repeat appends n copies of f.
func (s *Script) Repeat(f Frame, n int) *Script {
	for i := 0; i < n; i++ {
		s.frames = append(s.frames, f)
	}
	return s
}

func (s *Script) Len() int   { return len(s.frames) }
func (s *Script) Done() bool { return s.pos >= len(s.frames) }
func (s *Script) Rewind()    { s.pos = 0 }

// Step advances st by the next frame. Once the script is exhausted every
// action reads as released.
func (s *Script) Step(st *State) {
	var next Frame
	if s.pos < len(s.frames) {
		next = s.frames[s.pos]
		s.pos++
	}
	st.Advance(next)
}

// ParseScript reads whitespace-separated tokens of the form ACTIONS*COUNT,
// where ACTIONS is any of L (left), R (right), J (jump) or "." for nothing,
// and *COUNT is optional. "R*10 RJ*3 .*20" holds right for ten frames,
// right and jump for three, then idles for twenty.
func ParseScript(text string) (*Script, error) {
	s := NewScript()
	for _, tok := range strings.Fields(text) {
		keys, count := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad count in %q", tok)
			}
			keys, count = tok[:i], n
		}

		var f Frame
		for _, k := range keys {
			switch k {
			case 'L':
				f[ActionMoveLeft] = true
			case 'R':
				f[ActionMoveRight] = true
			case 'J':
				f[ActionJump] = true
			case '.':
			default:
				return nil, fmt.Errorf("unknown action %q in %q", k, tok)
			}
		}
		s.Repeat(f, count)
	}
	return s, nil
}
