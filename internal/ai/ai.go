// Package ai drives the computer-controlled paddle.
package ai

import (
	"math"
	"math/rand"

	"pongdrift/internal/entity"
	"pongdrift/internal/physics"
)

// Difficulty tunes how well the opponent tracks the ball.
type Difficulty struct {
	Name       string
	ReactionMs float64 // Time between target re-samples
	MaxSpeed   float64 // Pixels per second
	ErrorPx    float64 // Max aiming error either side of the ball
}

// Built-in presets.
var (
	Easy        = Difficulty{Name: "Easy", ReactionMs: 180, MaxSpeed: 380, ErrorPx: 40}
	Challenging = Difficulty{Name: "Challenging", ReactionMs: 120, MaxSpeed: 520, ErrorPx: 22}
	Hard        = Difficulty{Name: "Hard", ReactionMs: 80, MaxSpeed: 680, ErrorPx: 10}
)

// Presets lists the built-in difficulties from easiest to hardest.
var Presets = []Difficulty{Easy, Challenging, Hard}

// Lookup finds a preset by name.
func Lookup(name string) (Difficulty, bool) {
	for _, d := range Presets {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

const (
	// pursuitGain converts distance to target into desired speed.
	pursuitGain = 2.4
	// smoothingRate is the exponential approach rate of the actual velocity.
	smoothingRate = 8.0
)

// Controller moves a paddle toward a noisy, periodically re-sampled target.
type Controller struct {
	Difficulty Difficulty

	targetY       float64
	reactionTimer float64 // Milliseconds until the next re-sample
	velocity      float64
	rng           *rand.Rand
}

// NewController creates a controller aiming at centerY until its first re-sample.
func NewController(d Difficulty, centerY float64, rng *rand.Rand) *Controller {
	return &Controller{Difficulty: d, targetY: centerY, rng: rng}
}

// Reset clears velocity and forces a re-sample on the next update.
func (c *Controller) Reset(centerY float64) {
	c.targetY = centerY
	c.reactionTimer = 0
	c.velocity = 0
}

// SetDifficulty switches preset and immediately resets the reaction timer and target.
// Velocity is kept so the paddle does not stop dead.
func (c *Controller) SetDifficulty(d Difficulty, centerY float64) {
	c.Difficulty = d
	c.targetY = centerY
	c.reactionTimer = 0
}

// TargetY returns the currently pursued Y coordinate.
func (c *Controller) TargetY() float64 { return c.targetY }

// Velocity returns the current smoothed paddle velocity.
func (c *Controller) Velocity() float64 { return c.velocity }

// Update advances the controller by dt seconds and moves p toward ballY,
// keeping it inside an arena of the given height.
func (c *Controller) Update(dt float64, p *entity.Paddle, ballY, arenaHeight float64) {
	c.reactionTimer -= dt * 1000
	if c.reactionTimer <= 0 {
		c.reactionTimer = c.Difficulty.ReactionMs
		aimError := (c.rng.Float64()*2 - 1) * c.Difficulty.ErrorPx
		c.targetY = ballY + aimError
	}

	distance := c.targetY - p.CenterY()
	desired := physics.Clamp(distance*pursuitGain, -c.Difficulty.MaxSpeed, c.Difficulty.MaxSpeed)
	smoothing := 1 - math.Exp(-dt*smoothingRate)
	c.velocity += (desired - c.velocity) * smoothing

	p.Y += c.velocity * dt
	p.ClampY(arenaHeight)
}
