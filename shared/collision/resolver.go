// Package collision resolves the player's movement against static level
// geometry. Solids live in a resolv.Space used as the broad phase; the
// narrow phase works on axis-aligned boxes in y-up world coordinates.
package collision

import (
	"math"

	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/automoto/acorn-run/tags"
	"github.com/solarlune/resolv"
)

// eps absorbs rounding when a body rests exactly on a solid's face.
const eps = 1e-6

// spaceMargin pads the space above and beside the authored solids so a
// jumping player stays inside the grid.
const spaceMargin = 512

// Config holds the resolver's physics constants.
type Config struct {
	Gravity          float64 // subtracted from vertical velocity every tick
	MaxVerticalSpeed float64 // hard clamp on |Vel.Y|
	GroundProbe      float64 // distance below the body searched for ground
	CellSize         int
}

// Resolver is a sim.Resolver backed by a resolv.Space of solid tiles.
type Resolver struct {
	cfg   Config
	space *resolv.Space
	proxy *resolv.Object
}

var _ sim.Resolver = (*Resolver)(nil)

// NewResolver builds the collision space from the level's solids.
func NewResolver(solids []gamemath.Rect, cfg Config) *Resolver {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 16
	}

	var maxX, maxY float64
	for _, s := range solids {
		maxX = math.Max(maxX, s.MaxX)
		maxY = math.Max(maxY, s.MaxY)
	}
	width := int(math.Ceil(maxX)) + spaceMargin
	height := int(math.Ceil(maxY)) + spaceMargin
	space := resolv.NewSpace(width, height, cfg.CellSize, cfg.CellSize)

	for _, s := range solids {
		obj := resolv.NewObject(s.MinX, s.MinY, s.Width(), s.Height(), tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, s.Width(), s.Height()))
		space.Add(obj)
	}

	return &Resolver{cfg: cfg, space: space}
}

// Resolve applies gravity, moves the body along x and then y, stopping at the
// nearest solid in the way, and reports whether ground lies within the probe
// distance below it. Hitting a floor or ceiling cancels vertical velocity;
// walls stop the body but leave its horizontal velocity alone.
func (r *Resolver) Resolve(b *sim.Body) bool {
	r.syncProxy(b)

	b.Vel.Y -= r.cfg.Gravity
	b.Vel.Y = gamemath.ClampSpeed(b.Vel.Y, r.cfg.MaxVerticalSpeed)

	if dx := b.Vel.X; dx != 0 {
		moved, _ := r.sweep(b.Rect(), dx, 0)
		b.Pos.X += moved
		r.syncProxy(b)
	}

	if dy := b.Vel.Y; dy != 0 {
		moved, hit := r.sweep(b.Rect(), 0, dy)
		b.Pos.Y += moved
		if hit {
			b.Vel.Y = 0
		}
		r.syncProxy(b)
	}

	return r.grounded(b.Rect())
}

// syncProxy mirrors the body into the space so Check can find its cells.
func (r *Resolver) syncProxy(b *sim.Body) {
	rect := b.Rect()
	if r.proxy == nil {
		r.proxy = resolv.NewObject(rect.MinX, rect.MinY, rect.Width(), rect.Height(), tags.ResolvPlayer)
		r.proxy.SetShape(resolv.NewRectangle(0, 0, rect.Width(), rect.Height()))
		r.space.Add(r.proxy)
		return
	}
	r.proxy.X, r.proxy.Y = rect.MinX, rect.MinY
	r.proxy.W, r.proxy.H = rect.Width(), rect.Height()
	r.proxy.Update()
}

// candidates returns the solids in the cells covered by the proxy moved by
// (dx, dy).
func (r *Resolver) candidates(dx, dy float64) []gamemath.Rect {
	check := r.proxy.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tags.ResolvSolid)
	rects := make([]gamemath.Rect, 0, len(objs))
	for _, o := range objs {
		rects = append(rects, gamemath.Rect{MinX: o.X, MinY: o.Y, MaxX: o.X + o.W, MaxY: o.Y + o.H})
	}
	return rects
}

// sweep moves rect along one axis by delta and returns how far it actually
// got and whether a solid stopped it. Solids the rect already overlaps are
// ignored.
func (r *Resolver) sweep(rect gamemath.Rect, dx, dy float64) (float64, bool) {
	delta := dx + dy
	allowed := delta
	hit := false

	for _, s := range r.candidates(dx, dy) {
		var gap float64
		switch {
		case dx > 0 && overlapsY(rect, s) && s.MinX >= rect.MaxX-eps:
			gap = s.MinX - rect.MaxX
		case dx < 0 && overlapsY(rect, s) && s.MaxX <= rect.MinX+eps:
			gap = s.MaxX - rect.MinX
		case dy > 0 && overlapsX(rect, s) && s.MinY >= rect.MaxY-eps:
			gap = s.MinY - rect.MaxY
		case dy < 0 && overlapsX(rect, s) && s.MaxY <= rect.MinY+eps:
			gap = s.MaxY - rect.MinY
		default:
			continue
		}
		if math.Abs(gap) <= math.Abs(allowed) {
			allowed = gap
			hit = true
		}
	}
	return allowed, hit
}

// grounded reports whether a solid lies directly under rect, within the
// probe distance.
func (r *Resolver) grounded(rect gamemath.Rect) bool {
	for _, s := range r.candidates(0, -r.cfg.GroundProbe) {
		if overlapsX(rect, s) && s.MaxY <= rect.MinY+eps && rect.MinY-s.MaxY <= r.cfg.GroundProbe {
			return true
		}
	}
	return false
}

func overlapsX(a, b gamemath.Rect) bool {
	return a.MinX < b.MaxX-eps && a.MaxX > b.MinX+eps
}

func overlapsY(a, b gamemath.Rect) bool {
	return a.MinY < b.MaxY-eps && a.MaxY > b.MinY+eps
}
