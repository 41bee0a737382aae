package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHopAllowed(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		step float64
		want bool
	}{
		{"left from middle", 202, -101, true},
		{"left at edge", 0, -101, false},
		{"right from middle", 303, 101, true},
		{"right at edge", 404, 101, false},
		{"up from top row", 55, -83, true},
		{"up past the top", -28, -83, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			max := 404.0
			if tt.step == -83 {
				max = 332
			}
			assert.Equal(t, tt.want, HopAllowed(tt.v, tt.step, 0, max))
		})
	}
}

func TestCollides(t *testing.T) {
	const width = 50.5

	assert.True(t, Collides(202, 221, 180, 221, width))
	assert.True(t, Collides(202, 221, 202, 221, width))
	assert.False(t, Collides(202, 221, 180, 138, width), "different row")
	assert.False(t, Collides(202, 221, 151.5, 221, width), "touching from the left")
	assert.False(t, Collides(202, 221, 252.5, 221, width), "touching from the right")
	assert.True(t, Collides(202, 221, 252, 221, width))
}

func TestAdvance(t *testing.T) {
	t.Run("moves while left of boundary", func(t *testing.T) {
		assert.InDelta(t, 128, Advance(100, 280, 0.1, 505, -101), 1e-9)
	})

	t.Run("overshoot is kept for one tick", func(t *testing.T) {
		assert.InDelta(t, 520, Advance(500, 200, 0.1, 505, -101), 1e-9)
	})

	t.Run("wraps exactly to reset", func(t *testing.T) {
		assert.Equal(t, -101.0, Advance(520, 200, 0.1, 505, -101))
		assert.Equal(t, -101.0, Advance(505, 200, 0.1, 505, -101))
	})

	t.Run("zero dt holds position", func(t *testing.T) {
		assert.Equal(t, 42.0, Advance(42, 300, 0, 505, -101))
	})
}
