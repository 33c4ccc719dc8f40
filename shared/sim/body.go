// Package sim is the platformer simulation: the player, patrolling enemies,
// collectibles, the camera and the per-tick win/lose rules. It has no
// rendering or input dependencies; hosts feed it intents and a Resolver and
// read state back after each Tick.
//
// World coordinates have y pointing up. Positions are box centers.
package sim

import (
	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Body is an axis-aligned box with a center position and a velocity in
// world units per tick.
type Body struct {
	Pos  math.Vec2
	Vel  math.Vec2
	Size math.Vec2
}

// NewBody returns a resting body centered at (x, y).
func NewBody(x, y, w, h float64) Body {
	return Body{
		Pos:  math.Vec2{X: x, Y: y},
		Size: math.Vec2{X: w, Y: h},
	}
}

// Rect returns the body's bounds.
func (b *Body) Rect() gamemath.Rect {
	return gamemath.RectFromCenter(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

// Overlaps reports whether two bodies' boxes intersect.
func (b *Body) Overlaps(o *Body) bool {
	return b.Rect().Overlaps(o.Rect())
}
