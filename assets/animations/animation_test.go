package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceWaitsForInterval(t *testing.T) {
	a := NewAnimation(0.1)

	assert.False(t, a.Advance(0.05, 4))
	assert.False(t, a.Advance(0.05, 4), "timer must exceed the interval, not reach it")
	assert.Equal(t, 0, a.Frame())

	assert.True(t, a.Advance(0.05, 4))
	assert.Equal(t, 1, a.Frame())

	// The timer restarted from zero on the advance.
	assert.False(t, a.Advance(0.1, 4))
	assert.True(t, a.Advance(0.01, 4))
	assert.Equal(t, 2, a.Frame())
}

func TestAdvanceWraps(t *testing.T) {
	a := NewAnimation(0.1)
	for i := 0; i < 6; i++ {
		a.Advance(0.2, 4)
	}
	assert.Equal(t, 2, a.Frame())
}

func TestFrameSurvivesSequenceSwitch(t *testing.T) {
	a := NewAnimation(0.1)
	for i := 0; i < 5; i++ {
		a.Advance(0.2, 6)
	}
	assert.Equal(t, 5, a.Frame())

	// Switching to a two-frame sequence keeps the stale index until the next
	// advance folds it back into range.
	assert.False(t, a.Advance(0.01, 2))
	assert.Equal(t, 5, a.Frame())
	assert.True(t, a.Advance(0.2, 2))
	assert.Equal(t, 0, a.Frame())
}
