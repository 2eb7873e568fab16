package render

import (
	"image"
	"image/color"
	"math"

	"pongdrift/internal/physics"
)

// stop is a colour at a position along a gradient.
type stop struct {
	pos float64
	c   color.NRGBA
}

// sampleStops linearly interpolates the gradient at t. Stops must be sorted.
func sampleStops(stops []stop, t float64) color.NRGBA {
	if t <= stops[0].pos {
		return stops[0].c
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].pos {
			a, b := stops[i-1], stops[i]
			f := (t - a.pos) / (b.pos - a.pos)
			return lerpColor(a.c, b.c, f)
		}
	}
	return stops[len(stops)-1].c
}

func lerpColor(a, b color.NRGBA, f float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.NRGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// withAlpha returns c with its alpha multiplied by a.
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * physics.Clamp(a, 0, 1)))
	return c
}

// radialSprite renders a disc of the given radius whose colour follows stops
// by distance from (fx, fy), expressed as a fraction of radius from the center.
// span is the distance, in radii, that maps to the last stop.
func radialSprite(radius int, fx, fy, span float64, stops []stop) *image.NRGBA {
	size := radius * 2
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(radius)
	focusX := r + fx*r
	focusY := r + fy*r
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if physics.DistanceSquared(px, py, r, r) > r*r {
				continue
			}
			t := physics.Distance(px, py, focusX, focusY) / (span * r)
			img.SetNRGBA(x, y, sampleStops(stops, t))
		}
	}
	return img
}
