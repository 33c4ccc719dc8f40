package sim

import "fmt"

// AnimState is the player's animation state.
type AnimState int

const (
	Idle AnimState = iota
	Run
	Jump
)

func (s AnimState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Run:
		return "run"
	case Jump:
		return "jump"
	default:
		return fmt.Sprintf("AnimState(%d)", int(s))
	}
}

// Pose is what the player looks like: which frame of which state's sequence,
// and whether it is drawn mirrored. It only changes when the animation clock
// advances, so a state change shows up on the next frame advance.
type Pose struct {
	State    AnimState
	Frame    int
	Mirrored bool
}

// FrameCounts is the number of frames in each state's sequence.
type FrameCounts struct {
	Idle int
	Run  int
	Jump int
}

// For returns the frame count for a state.
func (f FrameCounts) For(s AnimState) int {
	switch s {
	case Run:
		return f.Run
	case Jump:
		return f.Jump
	default:
		return f.Idle
	}
}
