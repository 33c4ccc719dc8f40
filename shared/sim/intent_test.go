package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressIntents(t *testing.T) {
	tests := []struct {
		name      string
		intent    Intent
		wantVelX  float64
		wantVelY  float64
		wantState AnimState
		wantRight bool
	}{
		{name: "jump", intent: IntentJump, wantVelY: 15, wantState: Jump, wantRight: true},
		{name: "descend", intent: IntentDescend, wantVelY: -5, wantState: Idle, wantRight: true},
		{name: "left", intent: IntentLeft, wantVelX: -5, wantState: Run},
		{name: "right", intent: IntentRight, wantVelX: 5, wantState: Run, wantRight: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(floorResolver)
			s.Press(tt.intent)

			p := s.Player
			assert.Equal(t, tt.wantVelX, p.Vel.X)
			assert.Equal(t, tt.wantVelY, p.Vel.Y)
			assert.Equal(t, tt.wantState, p.State)
			assert.Equal(t, tt.wantRight, p.FacingRight)
		})
	}
}

func TestReleaseStopsHorizontalMotion(t *testing.T) {
	s := newTestSession(floorResolver)
	s.Press(IntentRight)
	s.Tick(tickAdvancing)

	s.Release(IntentRight)
	assert.Zero(t, s.Player.Vel.X)
	assert.Equal(t, Idle, s.Player.State)
}

func TestReleaseWhileAirborneKeepsJump(t *testing.T) {
	s := newTestSession(airResolver)
	s.Press(IntentLeft)
	s.Press(IntentJump)
	s.Tick(tickAdvancing)

	s.Release(IntentLeft)
	assert.Zero(t, s.Player.Vel.X)
	assert.Equal(t, Jump, s.Player.State)
}

func TestReleaseJumpDoesNotTouchVelocity(t *testing.T) {
	s := newTestSession(floorResolver)
	s.Tick(tickAdvancing)
	s.Press(IntentRight)

	s.Release(IntentJump)
	assert.Equal(t, 5.0, s.Player.Vel.X)
	assert.Equal(t, Run, s.Player.State)
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "jump", IntentJump.String())
	assert.Equal(t, "Intent(9)", Intent(9).String())
}
