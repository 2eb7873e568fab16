package game

import (
	"image/color"
	"math"

	"pongdrift/internal/entity"
	"pongdrift/internal/physics"
)

var wallSparkColor = color.NRGBA{196, 217, 255, 255}

// updateBall advances the ball one tick: serve hold, sticky capture, forces,
// integration, wall and paddle collisions, scoring and trail sampling.
func (w *World) updateBall(dt float64) {
	b := &w.Ball
	if w.serveTimer > 0 {
		w.serveTimer -= dt
		b.X = w.Width / 2
		b.Y = w.Height / 2
		return
	}

	if w.updateSticky(dt) {
		return
	}

	w.applyGravity(dt)
	w.applyModifierForces(dt)

	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = math.Abs(b.VY)
		w.Particles.Spawn(w.rng, b.X, b.Y, 8, 160, wallSparkColor)
	} else if b.Y+b.Radius > w.Height {
		b.Y = w.Height - b.Radius
		b.VY = -math.Abs(b.VY)
		w.Particles.Spawn(w.rng, b.X, b.Y, 8, 160, wallSparkColor)
	}

	if !w.collidePaddle(SidePlayer) {
		w.collidePaddle(SideAI)
	}

	if b.X+b.Radius < 0 {
		w.scorePoint(SideAI)
	} else if b.X-b.Radius > w.Width {
		w.scorePoint(SidePlayer)
	}

	w.Trail.Push(entity.TrailPoint{X: b.X, Y: b.Y})
	w.Trail.Trim(entity.TrailTarget(b.Speed(), w.Match.Rally))
}

// applyGravity pulls the ball toward every well unless gravity is off.
func (w *World) applyGravity(dt float64) {
	if !w.Controls.Gravity {
		return
	}
	for _, well := range w.Wells {
		ax, ay := well.Accel(w.Ball.X, w.Ball.Y)
		w.Ball.VX += ax * dt
		w.Ball.VY += ay * dt
	}
}

func (w *World) applyModifierForces(dt float64) {
	w.modifierClock += dt

	switch w.Modifier {
	case entity.CurveDrift:
		w.Ball.VY += math.Sin(w.modifierClock*CurveDriftFrequency) * CurveDriftForce * dt
	case entity.IonWind:
		w.Ball.VX += math.Sin(w.modifierClock*IonWindFrequency) * IonWindForce * dt
	}
}

// collidePaddle resolves a hit against one paddle. The ball is tested as an
// axis-aligned square of side 2r, so glancing corner hits can be missed.
// Only a ball moving toward the paddle's face counts.
func (w *World) collidePaddle(side Side) bool {
	p := w.paddle(side)
	b := &w.Ball
	r := b.Radius

	if !physics.RectsOverlap(b.X-r, b.Y-r, 2*r, 2*r, p.X, p.Y, p.Width, p.Height) {
		return false
	}

	switch {
	case side == SidePlayer && b.VX < 0:
		b.X = p.X + p.Width + r
	case side == SideAI && b.VX > 0:
		b.X = p.X - r
	default:
		return false
	}

	b.VX = -b.VX
	offset := (b.Y - p.CenterY()) / (p.Height / 2)
	b.VY += offset * PaddleDeflection
	b.VX = physics.Clamp(b.VX, -MaxBallComponent, MaxBallComponent)
	b.VY = physics.Clamp(b.VY, -MaxBallComponent, MaxBallComponent)

	w.registerPaddleHit()

	if w.Modifier == entity.StickyPaddle {
		w.attachSticky(side)
	}
	return true
}

// registerPaddleHit extends the rally, speeds the ball up and fires hit effects.
func (w *World) registerPaddleHit() {
	m := &w.Match
	m.Rally++
	if m.Rally > m.BestRally {
		m.BestRally = m.Rally
	}
	w.Effects.RallyPulse = RallyPulseTime

	target := RallySpeed(w.Ball.Speed(), m.Rally)
	w.Ball.SetSpeed(target)

	w.playPaddleHit(m.Rally, target)
	w.Effects.ShakeTimer = HitShakeTime
	w.Effects.ShakeStrength = 8 + math.Min(7, float64(m.Rally)*0.35)
	w.Particles.Spawn(w.rng, w.Ball.X, w.Ball.Y,
		10+min(12, m.Rally), 160+float64(m.Rally)*5, w.Cosmetic().TrailColor)
}

// RallySpeed returns the ball speed after a paddle hit at the given rally count.
func RallySpeed(speed float64, rally int) float64 {
	boost := 1.04 + physics.Clamp(float64(rally)*0.002, 0, 0.08)
	return physics.Clamp(speed*boost, BaseBallSpeed, MaxBallSpeed)
}

func (w *World) attachSticky(side Side) {
	p := w.paddle(side)
	limit := p.Height / 2 * StickyOffsetLimit
	w.sticky = stickyState{
		active:  true,
		side:    side,
		timer:   StickyHold,
		offsetY: physics.Clamp(w.Ball.Y-p.CenterY(), -limit, limit),
	}
}

// updateSticky pins a captured ball to its paddle and releases it when the
// hold expires. It reports whether the ball was held this tick.
func (w *World) updateSticky(dt float64) bool {
	s := &w.sticky
	if !s.active || s.timer <= 0 {
		return false
	}

	s.timer -= dt
	p := w.paddle(s.side)
	b := &w.Ball

	dir := 1.0
	b.X = p.X + p.Width + b.Radius
	if s.side == SideAI {
		dir = -1
		b.X = p.X - b.Radius
	}
	b.Y = p.CenterY() + s.offsetY

	if s.timer <= 0 {
		b.VX = BaseBallSpeed * StickyReleaseBoost * dir
		b.VY = s.offsetY * StickyReleaseGain
		s.active = false
	}
	return true
}
