package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Dist calculates the Euclidean distance between two points in pixel space
func Dist(a, b r2.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint calculates the midpoint of two points
func Midpoint(a, b r2.Point) r2.Point {
	return r2.Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// PathLength calculates the cumulative length of a polyline through points
func PathLength(points []r2.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Dist(points[i-1], points[i])
	}
	return total
}

// Heading returns the direction of vector v as an angle in radians
// in (-π, π], measured counter-clockwise from the positive x axis
func Heading(v r2.Point) float64 {
	return math.Atan2(v.Y, v.X)
}

// NormalizeAngle normalizes an angle in radians into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SweepDiff returns the counter-clockwise sweep from angle a1 to angle a2,
// normalized into [0, 2π) by adding 2π when the raw difference is negative
func SweepDiff(a1, a2 float64) float64 {
	diff := a2 - a1
	if diff < 0 {
		diff += 2 * math.Pi
	}
	return diff
}

// JointAngleDeg calculates the interior angle at vertex formed by the rays
// vertex->a and vertex->b, in degrees (0-180)
func JointAngleDeg(vertex, a, b r2.Point) float64 {
	v1 := a.Sub(vertex)
	v2 := b.Sub(vertex)

	n1 := v1.Norm()
	n2 := v2.Norm()
	if n1 == 0 || n2 == 0 {
		return 0
	}

	cos := v1.Dot(v2) / (n1 * n2)
	// Clamp against floating point drift before acos
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}
