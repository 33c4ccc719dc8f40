package sim

import (
	"github.com/automoto/acorn-run/assets/animations"
)

// Player is the controllable character.
type Player struct {
	Body
	JumpsLeft   int
	State       AnimState
	FacingRight bool
	// Grounded is the resolver's answer from the most recent tick.
	Grounded bool
	Anim     animations.Animation
	Pose     Pose
}

// NewPlayer creates an idle player facing right with a full jump budget.
func NewPlayer(body Body, maxJumps int, frameInterval float64) *Player {
	return &Player{
		Body:        body,
		JumpsLeft:   maxJumps,
		State:       Idle,
		FacingRight: true,
		Anim:        *animations.NewAnimation(frameInterval),
		Pose:        Pose{State: Idle},
	}
}

// settle applies the post-physics rules: landing restores the jump budget
// and picks idle or run; being airborne means jump.
func (p *Player) settle(maxJumps int) {
	if !p.Grounded {
		p.State = Jump
		return
	}
	p.JumpsLeft = maxJumps
	switch {
	case p.Vel.X == 0:
		p.State = Idle
	default:
		p.State = Run
		p.FacingRight = p.Vel.X > 0
	}
}

// animate steps the frame clock and refreshes the pose when it advances.
func (p *Player) animate(dt float64, counts FrameCounts) bool {
	if !p.Anim.Advance(dt, counts.For(p.State)) {
		return false
	}
	p.Pose = Pose{
		State:    p.State,
		Frame:    p.Anim.Frame(),
		Mirrored: p.State == Run && !p.FacingRight,
	}
	return true
}
