package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	base := RectFromCenter(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", RectFromCenter(0, 0, 10, 10), true},
		{"partial", RectFromCenter(8, 8, 10, 10), true},
		{"contained", RectFromCenter(1, 1, 2, 2), true},
		{"touching edge", RectFromCenter(10, 0, 10, 10), false},
		{"apart", RectFromCenter(30, 0, 10, 10), false},
		{"x overlap only", RectFromCenter(2, 20, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(64, 64, 32, 48)
	assert.Equal(t, 48.0, r.MinX)
	assert.Equal(t, 40.0, r.MinY)
	assert.Equal(t, 32.0, r.Width())
	assert.Equal(t, 48.0, r.Height())
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 16.0, ClampSpeed(40, 16))
	assert.Equal(t, -16.0, ClampSpeed(-40, 16))
	assert.Equal(t, 3.0, ClampSpeed(3, 16))
	assert.Equal(t, 0.0, ClampMin(-5, 0))
	assert.Equal(t, 7.0, ClampMin(7, 0))
}
