// Package player layers velocity, gravity and jumping on top of a
// physics.Actor.
package player

import (
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/physics"
)

// Input is what the player reads each frame.
type Input interface {
	IsHeld(a input.Action) bool
	JustPressed(a input.Action) bool
}

// Tuning contains the player's movement constants.
type Tuning struct {
	Gravity              float64
	JumpPower            float64
	RisingGravityScale   float64 // applied while moving up
	JumpHoldGravityScale float64 // applied on top while jump is held and moving up
}

// DefaultTuning is a short, floaty jump suited to 8px tiles.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:              0.2,
		JumpPower:            2,
		RisingGravityScale:   0.7,
		JumpHoldGravityScale: 0.6,
	}
}

type Player struct {
	physics.Actor

	VX, VY float64

	// Results of the most recent Update's moves.
	LastMoveX, LastMoveY physics.MoveResult

	probe  *physics.Probe
	input  Input
	tuning Tuning

	onHorizontal physics.CollisionHandler
	onVertical   physics.CollisionHandler
}

// New creates a player at rest at (x, y).
func New(probe *physics.Probe, in Input, tuning Tuning, x, y float64) *Player {
	if probe == nil {
		panic("player: nil probe")
	}
	if in == nil {
		panic("player: nil input")
	}
	p := &Player{
		Actor:  physics.Actor{X: x, Y: y},
		probe:  probe,
		input:  in,
		tuning: tuning,
	}
	p.onHorizontal = physics.CollisionFunc(p.OnHorizontalCollision)
	p.onVertical = physics.CollisionFunc(p.OnVerticalCollision)
	return p
}

func (p *Player) Tuning() Tuning { return p.tuning }

// Update advances the player by one frame: apply the current velocity, then
// read input for the next one. The order is fixed; moving before reading
// input means a landing zeroes vy before this frame's gravity is added.
func (p *Player) Update() {
	p.LastMoveX = p.MoveX(p.probe, p.VX, p.onHorizontal)
	p.LastMoveY = p.MoveY(p.probe, p.VY, p.onVertical)

	// Horizontal input sets velocity directly, overwriting any collision stop.
	p.VX = axis(p.input.IsHeld(input.ActionMoveRight)) - axis(p.input.IsHeld(input.ActionMoveLeft))

	p.ApplyGravity()

	if p.input.JustPressed(input.ActionJump) {
		p.Jump()
	}
}

// Gravity returns the gravity that ApplyGravity would add this frame.
// Rising is lighter, and lighter still while jump is held, so releasing
// jump early cuts the arc short.
func (p *Player) Gravity() float64 {
	g := p.tuning.Gravity
	if p.VY < 0 {
		g *= p.tuning.RisingGravityScale
		if p.input.IsHeld(input.ActionJump) {
			g *= p.tuning.JumpHoldGravityScale
		}
	}
	return g
}

func (p *Player) ApplyGravity() {
	p.VY += p.Gravity()
}

// Grounded reports whether a solid tile is directly below the player.
func (p *Player) Grounded() bool {
	return p.probe.Grounded(p.X, p.Y)
}

// Jump sets an upward impulse when grounded and is ignored otherwise.
func (p *Player) Jump() {
	if p.Grounded() {
		p.VY = -p.tuning.JumpPower
	}
}

func (p *Player) OnHorizontalCollision() {
	p.VX = 0
}

func (p *Player) OnVerticalCollision() {
	p.VY = 0
}

func axis(held bool) float64 {
	if held {
		return 1
	}
	return 0
}
