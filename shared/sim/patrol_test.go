package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatrolReversesAtRightBound(t *testing.T) {
	a := NewPatrolAgent(NewBody(1600, 64, 32, 32), 1570, 1800, 2)

	for i := 0; i < 100; i++ {
		a.Step()
	}
	require.Equal(t, 1800.0, a.Pos.X)
	assert.Equal(t, 2.0, a.Vel.X, "reaching the bound does not reverse within the same step")

	a.Step()
	assert.Equal(t, -2.0, a.Vel.X)
	assert.Equal(t, 1798.0, a.Pos.X)
}

func TestPatrolStaysNearBounds(t *testing.T) {
	tests := []struct {
		name        string
		start       float64
		left, right float64
		speed       float64
	}{
		{name: "meadow slime", start: 1600, left: 1570, right: 1800, speed: 2},
		{name: "uneven speed", start: 10, left: 0, right: 100, speed: 3.7},
		{name: "starts left", start: 0, left: 0, right: 50, speed: -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewPatrolAgent(NewBody(tt.start, 0, 32, 32), tt.left, tt.right, tt.speed)
			speed := tt.speed
			if speed < 0 {
				speed = -speed
			}
			for i := 0; i < 1000; i++ {
				a.Step()
				assert.GreaterOrEqual(t, a.Pos.X, tt.left-speed)
				assert.LessOrEqual(t, a.Pos.X, tt.right+speed)
			}
		})
	}
}

func TestPatrolBoundsAreOrdered(t *testing.T) {
	a := NewPatrolAgent(NewBody(0, 0, 32, 32), 300, 100, 2)

	left, right := a.Bounds()
	assert.Equal(t, 100.0, left)
	assert.Equal(t, 300.0, right)
}
