// internal/utils/math_test.go
package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 1.5 * math.Pi},
		{5 * math.Pi, math.Pi},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "WrapAngle(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, TwoPi)
	}
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 0.0, AngleBetween(1, 1), 1e-12)
	assert.InDelta(t, 0.2, AngleBetween(0.1, TwoPi-0.1), 1e-9)
	assert.InDelta(t, math.Pi, AngleBetween(0, math.Pi), 1e-9)
	assert.InDelta(t, math.Pi/2, AngleBetween(-math.Pi/4, math.Pi/4), 1e-9)
	assert.True(t, math.IsNaN(AngleBetween(math.NaN(), 0)))
}

func TestShortestArcCrossesZero(t *testing.T) {
	assert.InDelta(t, -0.2, ShortestArc(0.1, TwoPi-0.1), 1e-9)
	assert.InDelta(t, 0.2, ShortestArc(TwoPi-0.1, 0.1), 1e-9)
}

func TestLerpAngle(t *testing.T) {
	assert.InDelta(t, 0.0, LerpAngle(0.1, TwoPi-0.1, 0.5), 1e-9)
	assert.InDelta(t, 1.0, LerpAngle(1.0, 2.0, 0), 1e-12)
	assert.InDelta(t, 2.0, LerpAngle(1.0, 2.0, 1), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.True(t, math.IsNaN(Clamp(math.NaN(), 0, 1)))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
}
