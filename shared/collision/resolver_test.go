package collision

import (
	"os"
	"testing"

	"github.com/automoto/acorn-run/shared/gamemath"
	"github.com/automoto/acorn-run/shared/leveldata"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

var testConfig = Config{
	Gravity:          1.5,
	MaxVerticalSpeed: 16,
	GroundProbe:      5,
	CellSize:         16,
}

// floor is a slab whose top face is at y = 36.
var floor = gamemath.Rect{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 36}

func TestFallingBodyLands(t *testing.T) {
	r := NewResolver([]gamemath.Rect{floor}, testConfig)
	b := sim.NewBody(100, 100, 32, 48)

	var grounded bool
	for i := 0; i < 100; i++ {
		grounded = r.Resolve(&b)
	}

	assert.True(t, grounded)
	assert.Equal(t, 60.0, b.Pos.Y)
	assert.Zero(t, b.Vel.Y)
}

func TestVerticalSpeedIsClamped(t *testing.T) {
	r := NewResolver([]gamemath.Rect{floor}, testConfig)
	b := sim.NewBody(100, 400, 32, 48)
	b.Vel.Y = -30

	assert.False(t, r.Resolve(&b))
	assert.Equal(t, -16.0, b.Vel.Y)
	assert.Equal(t, 384.0, b.Pos.Y)
}

func TestCeilingStopsJump(t *testing.T) {
	ceiling := gamemath.Rect{MinX: 50, MinY: 90, MaxX: 150, MaxY: 120}
	r := NewResolver([]gamemath.Rect{floor, ceiling}, testConfig)
	b := sim.NewBody(100, 60, 32, 48)
	b.Vel.Y = 15

	grounded := r.Resolve(&b)

	assert.Equal(t, 66.0, b.Pos.Y)
	assert.Zero(t, b.Vel.Y)
	assert.False(t, grounded, "6 units above the floor is outside the probe")
}

func TestWallStopsHorizontalMove(t *testing.T) {
	wall := gamemath.Rect{MinX: 120, MinY: 36, MaxX: 150, MaxY: 200}
	r := NewResolver([]gamemath.Rect{floor, wall}, testConfig)
	b := sim.NewBody(100, 60, 32, 48)
	b.Vel.X = 5

	assert.True(t, r.Resolve(&b))
	assert.Equal(t, 104.0, b.Pos.X)
	assert.Equal(t, 5.0, b.Vel.X, "walls do not cancel horizontal velocity")

	r.Resolve(&b)
	assert.Equal(t, 104.0, b.Pos.X)
}

func TestWalkingLeftIntoWall(t *testing.T) {
	wall := gamemath.Rect{MinX: 50, MinY: 36, MaxX: 80, MaxY: 200}
	r := NewResolver([]gamemath.Rect{floor, wall}, testConfig)
	b := sim.NewBody(100, 60, 32, 48)
	b.Vel.X = -5

	r.Resolve(&b)
	assert.Equal(t, 96.0, b.Pos.X)
}

func TestWalkingAcrossTileSeams(t *testing.T) {
	var tiles []gamemath.Rect
	for x := 0.0; x < 1000; x += 24 {
		tiles = append(tiles, gamemath.RectFromCenter(x, 24, 24, 24))
	}
	r := NewResolver(tiles, testConfig)
	b := sim.NewBody(100, 60, 32, 48)
	b.Vel.X = 5

	for i := 0; i < 100; i++ {
		require.True(t, r.Resolve(&b))
	}
	assert.Equal(t, 600.0, b.Pos.X)
	assert.Equal(t, 60.0, b.Pos.Y)
}

func TestGroundProbe(t *testing.T) {
	tests := []struct {
		name   string
		height float64 // gap between body bottom and floor top before the tick
		want   bool
	}{
		{name: "resting", height: 0, want: true},
		{name: "just above", height: 3, want: true},
		{name: "within probe after gravity", height: 6, want: true},
		{name: "high", height: 20, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver([]gamemath.Rect{floor}, testConfig)
			b := sim.NewBody(100, 36+24+tt.height, 32, 48)
			assert.Equal(t, tt.want, r.Resolve(&b))
		})
	}
}

func TestDescendOnGroundIsBlocked(t *testing.T) {
	r := NewResolver([]gamemath.Rect{floor}, testConfig)
	b := sim.NewBody(100, 60, 32, 48)
	b.Vel.Y = -5

	assert.True(t, r.Resolve(&b))
	assert.Equal(t, 60.0, b.Pos.Y)
	assert.Zero(t, b.Vel.Y)
}

func TestMeadowSession(t *testing.T) {
	layout, err := leveldata.Load(os.DirFS("../../assets"), "levels/meadow.tmx")
	require.NoError(t, err)

	params := sim.Params{
		MoveSpeed:     5,
		JumpSpeed:     15,
		MaxJumps:      2,
		FrameInterval: 0.1,
		FrameCounts:   sim.FrameCounts{Idle: 4, Run: 6, Jump: 2},
		Viewport:      math.Vec2{X: 1000, Y: 650},
	}
	world := sim.WorldFromLayout(layout, params)
	s := sim.NewSession(params, world, NewResolver(world.Level.Solids(), testConfig))

	for i := 0; i < 5; i++ {
		require.Equal(t, sim.Running, s.Tick(1.0/60))
	}
	assert.True(t, s.Player.Grounded)
	assert.Equal(t, 60.0, s.Player.Pos.Y)

	// The first crate's left face is at x = 123.
	s.Press(sim.IntentRight)
	for i := 0; i < 30; i++ {
		s.Tick(1.0 / 60)
	}
	assert.Equal(t, 107.0, s.Player.Pos.X)
	assert.Equal(t, sim.Run, s.Player.State)

	s.Press(sim.IntentJump)
	assert.Equal(t, 1, s.Player.JumpsLeft)
	s.Tick(1.0 / 60)
	assert.False(t, s.Player.Grounded)
	assert.Equal(t, sim.Jump, s.Player.State)
	assert.Greater(t, s.Player.Pos.Y, 60.0)
}
