package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolarToRect(t *testing.T) {
	tests := []struct {
		distance, angle float64
		x, y            float64
	}{
		{5, 0, 5, 0},
		{5, 90, 0, 5},
		{5, 180, -5, 0},
		{5, 270, 0, -5},
		{2, 45, math.Sqrt2, math.Sqrt2},
		{-3, 0, -3, 0},
	}
	for _, tt := range tests {
		x, y := PolarToRect(tt.distance, tt.angle)
		assert.InDelta(t, tt.x, x, 1e-9, "x for %v@%v", tt.distance, tt.angle)
		assert.InDelta(t, tt.y, y, 1e-9, "y for %v@%v", tt.distance, tt.angle)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{359.5, 359.5},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		// a single turn is corrected, no more
		{720, 360},
		{-450, -90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%v)", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for a := -360.0; a < 720; a += 7.5 {
		once := Normalize(a)
		assert.Equal(t, once, Normalize(once), "angle %v", a)
		assert.True(t, once >= 0 && once < 360, "angle %v -> %v", a, once)
	}
}

func TestRoundNum(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{-2.5, -3},
		{0.49, 0},
		{-0.49, 0},
		{1.5, 2},
		{0.5, 1},
		{-1.2, -1},
		{7, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundNum(tt.in), "RoundNum(%v)", tt.in)
	}
}

func TestAdjustDeltas(t *testing.T) {
	tests := []struct {
		dx, dy         float64
		wantDx, wantDy float64
	}{
		{5, -3, 4, -2},
		{0, 0, 0, 0},
		{-1, 1, 0, 0},
		{0.25, 0, -0.75, 0},
	}
	for _, tt := range tests {
		dx, dy := AdjustDeltas(tt.dx, tt.dy)
		assert.Equal(t, tt.wantDx, dx)
		assert.Equal(t, tt.wantDy, dy)
	}
}
