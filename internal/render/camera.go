package render

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"pongdrift/internal/game"
	"pongdrift/internal/physics"
)

// Camera is the combined zoom and shake transform applied to the playfield.
type Camera struct {
	Zoom             float64
	OffsetX, OffsetY float64
}

// NewCamera derives the camera for a frame. Zoom grows slightly with rally
// length and ball speed; while a shake is active the view jitters by a
// random offset that decays with the shake timer.
func NewCamera(rally int, speed float64, fx game.Effects, rng *rand.Rand) Camera {
	// Keep zoom subtle so edge paddles never leave the frame.
	rallyZoom := physics.Clamp(float64(rally)/44, 0, 0.02)
	speedZoom := physics.Clamp((speed-game.BaseBallSpeed)/9000, 0, 0.015)
	c := Camera{Zoom: 1 + rallyZoom + speedZoom}

	if fx.ShakeTimer > 0 && fx.ShakeDuration > 0 {
		intensity := fx.ShakeTimer / fx.ShakeDuration * fx.ShakeStrength
		c.OffsetX = (rng.Float64()*2 - 1) * intensity
		c.OffsetY = (rng.Float64()*2 - 1) * intensity
	}
	return c
}

// GeoM returns the transform that zooms about the arena center and shakes.
func (c Camera) GeoM(width, height float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-width/2, -height/2)
	m.Scale(c.Zoom, c.Zoom)
	m.Translate(width/2+c.OffsetX, height/2+c.OffsetY)
	return m
}
