// Package entity holds the plain data of a match: paddles, ball, wells,
// particles and the ball trail.
package entity

import "pongdrift/internal/physics"

// Paddle is a vertical bat. X is fixed per side, Y moves.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Pixels per second
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// ClampY keeps the paddle fully inside an arena of the given height.
func (p *Paddle) ClampY(arenaHeight float64) {
	p.Y = physics.Clamp(p.Y, 0, arenaHeight-p.Height)
}

// Ball radii.
const (
	BallRadius    = 9.0
	BigBallRadius = 13.0
)

// Ball is the single moving ball.
type Ball struct {
	X, Y   float64 // Center
	VX, VY float64 // Pixels per second
	Radius float64
}

// Speed returns the magnitude of the ball's velocity.
func (b *Ball) Speed() float64 {
	return physics.Magnitude(b.VX, b.VY)
}

// SetSpeed rescales the velocity to the given magnitude, preserving direction.
func (b *Ball) SetSpeed(speed float64) {
	b.VX, b.VY = physics.Rescale(b.VX, b.VY, speed)
}

// GravityWell attracts the ball. Only its position changes, on resize.
type GravityWell struct {
	X, Y      float64
	Strength  float64
	Softening float64
}

// Accel returns the acceleration the well applies to a ball at (x, y).
func (w GravityWell) Accel(x, y float64) (float64, float64) {
	return physics.GravityAccel(x, y, w.X, w.Y, w.Strength, w.Softening)
}
