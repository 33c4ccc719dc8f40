package sim

import (
	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// CameraOffset centers a viewport on center. Each axis is clamped at 0 so the
// view never shows negative world coordinates; the far edges are not clamped.
func CameraOffset(center, viewport math.Vec2) math.Vec2 {
	return math.Vec2{
		X: gamemath.ClampMin(center.X-viewport.X/2, 0),
		Y: gamemath.ClampMin(center.Y-viewport.Y/2, 0),
	}
}
