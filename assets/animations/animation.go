package animations

// Animation is a fixed-cadence frame clock. It does not own a frame count:
// the caller passes the count of whatever sequence is active, so switching
// sequences keeps the running frame index.
type Animation struct {
	Interval float64 // seconds the timer must exceed before the frame advances
	timer    float64
	frame    int
}

// Advance adds dt to the timer. Once the timer exceeds Interval it resets to
// zero and the frame moves to (frame+1) mod frameCount. It reports whether
// the frame advanced.
func (a *Animation) Advance(dt float64, frameCount int) bool {
	a.timer += dt
	if a.timer <= a.Interval {
		return false
	}
	a.timer = 0
	if frameCount <= 0 {
		a.frame = 0
		return true
	}
	a.frame = (a.frame + 1) % frameCount
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

func NewAnimation(interval float64) *Animation {
	return &Animation{Interval: interval}
}
