package sim

import "fmt"

// Intent is a player command decoded from input.
type Intent int

const (
	IntentJump Intent = iota
	IntentDescend
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentJump:
		return "jump"
	case IntentDescend:
		return "descend"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Press applies the key-down edge of an intent. A jump with no budget left is
// ignored. Intents are ignored once the session has ended.
func (s *Session) Press(in Intent) {
	if s.outcome != Running {
		return
	}
	p := s.Player
	switch in {
	case IntentJump:
		if p.JumpsLeft <= 0 {
			return
		}
		p.Vel.Y = s.params.JumpSpeed
		p.JumpsLeft--
		p.State = Jump
	case IntentDescend:
		p.Vel.Y = -s.params.MoveSpeed
		p.State = Idle
	case IntentLeft:
		p.Vel.X = -s.params.MoveSpeed
		p.State = Run
		p.FacingRight = false
	case IntentRight:
		p.Vel.X = s.params.MoveSpeed
		p.State = Run
		p.FacingRight = true
	}
}

// Release applies the key-up edge of an intent. Releasing a move stops
// horizontal motion; a grounded, stopped player drops to idle. The grounded
// flag is the one from the most recent tick.
func (s *Session) Release(in Intent) {
	if s.outcome != Running {
		return
	}
	p := s.Player
	if in == IntentLeft || in == IntentRight {
		p.Vel.X = 0
	}
	if p.Grounded && p.Vel.X == 0 {
		p.State = Idle
	}
}
