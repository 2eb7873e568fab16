package entity

import (
	"math"

	"pongdrift/internal/physics"
)

// TrailCapacity bounds the trail; TrailTarget never exceeds it.
const TrailCapacity = 64

// TrailPoint is a sampled ball position.
type TrailPoint struct {
	X, Y float64
}

// Trail is a ring buffer of ball positions, oldest first.
type Trail struct {
	points [TrailCapacity]TrailPoint
	start  int
	n      int
}

// TrailTarget returns the desired trail length for a ball speed and rally count.
func TrailTarget(speed float64, rally int) int {
	return int(math.Floor(9 + physics.Clamp(speed/45, 0, 20) + physics.Clamp(float64(rally)*0.7, 0, 14)))
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.n }

// Clear drops every point.
func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}

// Push appends the newest point, evicting the oldest when full.
func (t *Trail) Push(p TrailPoint) {
	if t.n == TrailCapacity {
		t.points[t.start] = p
		t.start = (t.start + 1) % TrailCapacity
		return
	}
	t.points[(t.start+t.n)%TrailCapacity] = p
	t.n++
}

// Trim drops the oldest points until at most max remain.
func (t *Trail) Trim(max int) {
	if max < 0 {
		max = 0
	}
	for t.n > max {
		t.start = (t.start + 1) % TrailCapacity
		t.n--
	}
}

// At returns the i-th point, 0 being the oldest.
func (t *Trail) At(i int) TrailPoint {
	return t.points[(t.start+i)%TrailCapacity]
}
