package config

import (
	"github.com/automoto/acorn-run/shared/collision"
	"github.com/automoto/acorn-run/shared/sim"
	"github.com/yohamta/donburi/features/math"
)

// SimParams converts the loaded settings into session parameters. Frame
// counts come from the loaded animation frames.
func SimParams(frames sim.FrameCounts) sim.Params {
	return sim.Params{
		MoveSpeed:     Player.MoveSpeed,
		JumpSpeed:     Player.JumpSpeed,
		MaxJumps:      Player.MaxJumps,
		FrameInterval: Animation.FrameInterval,
		FrameCounts:   frames,
		Viewport:      Viewport(),
	}
}

// Viewport is the visible world area.
func Viewport() math.Vec2 {
	v := math.Vec2{X: Camera.ViewportWidth, Y: Camera.ViewportHeight}
	if v.X <= 0 {
		v.X = float64(C.Width)
	}
	if v.Y <= 0 {
		v.Y = float64(C.Height)
	}
	return v
}

// ResolverConfig returns the collision resolver's constants.
func ResolverConfig() collision.Config {
	return collision.Config{
		Gravity:          Physics.Gravity,
		MaxVerticalSpeed: Physics.VerticalSpeedClamp,
		GroundProbe:      Physics.GroundProbe,
		CellSize:         Physics.CellSize,
	}
}
