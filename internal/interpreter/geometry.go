package interpreter

import "math"

// PolarToRect converts a distance along a heading in degrees into x and y
// displacements.
func PolarToRect(distance, degrees float64) (x, y float64) {
	rad := degrees * math.Pi / 180.0
	return distance * math.Cos(rad), distance * math.Sin(rad)
}

// Normalize folds angle back into [0, 360) by adding or subtracting a
// single turn. It does not loop: an angle more than one turn outside the
// range stays outside it.
func Normalize(angle float64) float64 {
	if angle >= 360 {
		return angle - 360
	}
	if angle < 0 {
		return angle + 360
	}
	return angle
}

// RoundNum rounds half away from zero.
func RoundNum(n float64) float64 {
	if n > 0 {
		return math.Floor(n + 0.5)
	}
	return math.Ceil(n - 0.5)
}

// AdjustDeltas moves each non-zero delta one unit toward zero so a line
// drawn from the current cell stops short of the cell the turtle lands on.
func AdjustDeltas(dx, dy float64) (float64, float64) {
	return towardZero(dx), towardZero(dy)
}

func towardZero(d float64) float64 {
	switch {
	case d > 0:
		return d - 1
	case d < 0:
		return d + 1
	}
	return d
}
