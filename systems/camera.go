package systems

import (
	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// cullPadding keeps sprites from popping in and out at the screen edges.
const cullPadding = 64.0

// view maps world space (y up, origin bottom-left) to screen space
// (y down, origin top-left) for one frame.
type view struct {
	camera        math.Vec2
	width, height float64
}

func newView(camera math.Vec2, width, height int) view {
	return view{camera: camera, width: float64(width), height: float64(height)}
}

// topLeft returns the screen position of a world rectangle's top-left corner.
func (v view) topLeft(r gamemath.Rect) (float64, float64) {
	return r.MinX - v.camera.X, v.height - (r.MaxY - v.camera.Y)
}

// visible reports whether r intersects the padded viewport.
func (v view) visible(r gamemath.Rect) bool {
	return r.MaxX >= v.camera.X-cullPadding &&
		r.MinX <= v.camera.X+v.width+cullPadding &&
		r.MaxY >= v.camera.Y-cullPadding &&
		r.MinY <= v.camera.Y+v.height+cullPadding
}
