package sim

// PatrolAgent walks back and forth between two fixed x bounds. It ignores
// gravity and level geometry.
type PatrolAgent struct {
	Body
	Sprite string

	left, right float64
}

// NewPatrolAgent places an agent moving at speed (positive is rightward).
// Bounds given in the wrong order are swapped.
func NewPatrolAgent(body Body, left, right, speed float64) *PatrolAgent {
	if left > right {
		left, right = right, left
	}
	body.Vel.X = speed
	return &PatrolAgent{Body: body, left: left, right: right}
}

// Bounds returns the patrol interval.
func (a *PatrolAgent) Bounds() (left, right float64) {
	return a.left, a.right
}

// Step moves the agent one tick. An agent sitting on or past a bound
// reverses before it moves; the position is never clamped, so it can
// overshoot a bound by at most one step.
func (a *PatrolAgent) Step() {
	if a.Pos.X <= a.left || a.Pos.X >= a.right {
		a.Vel.X = -a.Vel.X
	}
	a.Pos.X += a.Vel.X
}
