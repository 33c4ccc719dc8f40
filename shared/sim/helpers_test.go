package sim

import (
	"github.com/yohamta/donburi/features/math"
)

// tickAdvancing is longer than the frame interval, so every tick advances
// the animation by one frame.
const tickAdvancing = 0.11

func testParams() Params {
	return Params{
		MoveSpeed:     5,
		JumpSpeed:     15,
		MaxJumps:      2,
		FrameInterval: 0.1,
		FrameCounts:   FrameCounts{Idle: 4, Run: 6, Jump: 2},
		Viewport:      math.Vec2{X: 1000, Y: 650},
	}
}

// floorResolver keeps the player on an invisible floor: it applies
// horizontal velocity, cancels vertical velocity, and always reports grounded.
var floorResolver = ResolverFunc(func(b *Body) bool {
	b.Pos.X += b.Vel.X
	b.Vel.Y = 0
	return true
})

// airResolver integrates velocity with a little gravity and never lands.
var airResolver = ResolverFunc(func(b *Body) bool {
	b.Vel.Y -= 1
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
	return false
})

// scriptedResolver reports grounded flags from a fixed script, cycling, and
// integrates horizontal velocity.
type scriptedResolver struct {
	grounded []bool
	calls    int
}

func (r *scriptedResolver) Resolve(b *Body) bool {
	g := r.grounded[r.calls%len(r.grounded)]
	r.calls++
	b.Pos.X += b.Vel.X
	if g {
		b.Vel.Y = 0
	}
	return g
}

type worldOption func(*World)

func withPatrol(x, y, left, right, speed float64) worldOption {
	return func(w *World) {
		w.Patrols = append(w.Patrols, NewPatrolAgent(NewBody(x, y, 32, 32), left, right, speed))
	}
}

func withCollectible(x, y float64) worldOption {
	return func(w *World) {
		w.Collectibles = append(w.Collectibles, Collectible{Body: NewBody(x, y, 24, 24)})
	}
}

func withGoal(x, y float64) worldOption {
	return func(w *World) {
		w.Level.Goal = Goal{Body: NewBody(x, y, 96, 96)}
	}
}

func withPlayerAt(x, y float64) worldOption {
	return func(w *World) {
		w.Player.Pos = math.Vec2{X: x, Y: y}
	}
}

func newTestSession(r Resolver, opts ...worldOption) *Session {
	params := testParams()
	world := World{
		Level: &Level{
			Name:  "test",
			Width: 5000,
			Goal:  Goal{Body: NewBody(4800, 100, 96, 96)},
		},
		Player: NewPlayer(NewBody(64, 64, 32, 48), params.MaxJumps, params.FrameInterval),
	}
	for _, opt := range opts {
		opt(&world)
	}
	return NewSession(params, world, r)
}
