package gamemath

// Rect is an axis-aligned box in world units. Min is the corner with the
// smaller coordinates on both axes.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromCenter builds a box of size w×h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Overlaps reports whether the two boxes share interior area. Boxes that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX &&
		r.MinY < o.MaxY && r.MaxY > o.MinY
}
