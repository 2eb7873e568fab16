// Package physics provides clamping, distance and force-law helpers.
package physics

import "math"

// Clamp limits value to the closed range [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSquared calculates the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// GravityAccel returns the acceleration a body at (bx, by) feels toward a well
// at (wx, wy): strength / (d² + softening) along the unit vector to the well.
// A body sitting exactly on the well gets a zero direction, not NaN.
func GravityAccel(bx, by, wx, wy, strength, softening float64) (ax, ay float64) {
	dx := wx - bx
	dy := wy - by
	dist2 := dx*dx + dy*dy
	dist := math.Sqrt(dist2)
	if dist == 0 {
		dist = 1
	}
	force := strength / (dist2 + softening)
	return dx / dist * force, dy / dist * force
}

// RectsOverlap reports whether two axis-aligned rectangles overlap (edges touching do not count).
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}

// Magnitude returns the length of the vector (x, y).
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Rescale returns (x, y) scaled so its length becomes target, preserving direction.
// Vectors shorter than 1 are treated as length 1 so a resting vector stays finite.
func Rescale(x, y, target float64) (float64, float64) {
	ratio := target / math.Max(1, math.Hypot(x, y))
	return x * ratio, y * ratio
}
