package render

import (
	"math"

	"pongdrift/internal/game"
	"pongdrift/internal/physics"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// EaseInOutQuad maps t in [0, 1] onto a quadratic ease-in-out curve.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// QuadBezier evaluates a quadratic Bézier curve at t.
func QuadBezier(p0, p1, p2 Point, t float64) Point {
	inv := 1 - t
	return Point{
		X: inv*inv*p0.X + 2*inv*t*p1.X + t*t*p2.X,
		Y: inv*inv*p0.Y + 2*inv*t*p1.Y + t*t*p2.Y,
	}
}

// SplashFrame describes the intro at one moment.
type SplashFrame struct {
	Ball   Point
	Radius float64
	Alpha  float64 // 1 until the fade starts, then down to 0
}

// Splash computes the intro ball flight: a Bézier arc from lower left over
// the center, growing until it covers the screen, then fading out.
func Splash(elapsed, width, height float64) SplashFrame {
	cx, cy := width/2, height/2
	fade := physics.Clamp((elapsed-game.SplashFadeStart)/game.SplashFadeDuration, 0, 1)
	ease := EaseInOutQuad(physics.Clamp(elapsed/game.SplashAnimDuration, 0, 1))

	start := Point{cx - 140, cy + 30}
	control := Point{cx + 40, cy - 120}
	end := Point{cx + 200, cy + 120}
	maxRadius := math.Max(width, height) * 1.05

	return SplashFrame{
		Ball:   QuadBezier(start, control, end, ease),
		Radius: 4 + ease*maxRadius,
		Alpha:  1 - fade,
	}
}
