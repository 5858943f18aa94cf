package physics

import "math"

// CollisionHandler reacts to a move being stopped by a solid tile.
type CollisionHandler interface {
	OnCollision()
}

// CollisionFunc adapts a plain function to CollisionHandler.
type CollisionFunc func()

func (f CollisionFunc) OnCollision() { f() }

// MoveResult describes what a single move call did.
type MoveResult struct {
	Distance int  // whole pixels travelled, signed
	Collided bool // the move was cut short by a solid tile
}

// Actor is anything with a position that moves against the grid.
type Actor struct {
	X, Y float64

	// Fractional movement not yet applied. Always within (-1, 1) after a move.
	RemX, RemY float64
}

func NewActor(x, y float64) *Actor {
	return &Actor{X: x, Y: y}
}

// Position returns the actor's top-left corner.
func (a *Actor) Position() (x, y float64) {
	return a.X, a.Y
}

// Place teleports the actor and drops any pending remainder.
func (a *Actor) Place(x, y float64) {
	a.X, a.Y = x, y
	a.RemX, a.RemY = 0, 0
}

// MoveX moves by amount pixels horizontally. The whole-pixel part of the
// accumulated remainder is stepped one pixel at a time; the first step into a
// solid tile calls h (if non-nil) and ends the move. Pixels left unstepped
// after a collision are dropped, not returned to the remainder.
func (a *Actor) MoveX(p *Probe, amount float64, h CollisionHandler) MoveResult {
	return move(&a.X, &a.RemX, amount, h, func(x float64) bool {
		return p.OverlapsSolid(x, a.Y)
	})
}

// MoveY is MoveX for the vertical axis.
func (a *Actor) MoveY(p *Probe, amount float64, h CollisionHandler) MoveResult {
	return move(&a.Y, &a.RemY, amount, h, func(y float64) bool {
		return p.OverlapsSolid(a.X, y)
	})
}

func move(pos, rem *float64, amount float64, h CollisionHandler, blocked func(float64) bool) MoveResult {
	*rem += amount

	// Half-way remainders round to even: 0.5 and -0.5 stay put, 1.5 steps 2.
	step := int(math.RoundToEven(*rem))
	if step == 0 {
		return MoveResult{}
	}
	*rem -= float64(step)

	sign := 1
	if step < 0 {
		sign = -1
	}

	var res MoveResult
	for step != 0 {
		if blocked(*pos + float64(sign)) {
			if h != nil {
				h.OnCollision()
			}
			res.Collided = true
			return res
		}
		*pos += float64(sign)
		step -= sign
		res.Distance += sign
	}
	return res
}
