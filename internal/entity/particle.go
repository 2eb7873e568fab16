package entity

import (
	"image/color"
	"math"
	"math/rand"
)

// particleDrag is the per-tick velocity retention of a particle.
const particleDrag = 0.93

// Particle is a short-lived visual puff.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Seconds remaining
	MaxLife float64
	Size    float64
	Color   color.NRGBA
}

// Alpha returns the remaining life fraction in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, p.Life/p.MaxLife))
}

// Particles is a capacity-checked particle pool. Expired particles are
// removed on Update; once Cap is reached new spawns are dropped.
type Particles struct {
	items []Particle
	Cap   int
}

// NewParticles creates an empty pool holding at most capacity particles.
func NewParticles(capacity int) *Particles {
	return &Particles{items: make([]Particle, 0, capacity), Cap: capacity}
}

// Len returns the number of live particles.
func (ps *Particles) Len() int { return len(ps.items) }

// Items returns the live particles. The slice is only valid until the next mutation.
func (ps *Particles) Items() []Particle { return ps.items }

// Clear removes every particle.
func (ps *Particles) Clear() { ps.items = ps.items[:0] }

// Spawn creates count particles bursting from (x, y) in random directions.
func (ps *Particles) Spawn(rng *rand.Rand, x, y float64, count int, speed float64, c color.NRGBA) {
	for i := 0; i < count; i++ {
		if len(ps.items) >= ps.Cap {
			return
		}
		angle := rng.Float64() * math.Pi * 2
		magnitude := speed * (0.35 + rng.Float64()*0.75)
		life := 0.3 + rng.Float64()*0.22
		ps.items = append(ps.items, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * magnitude,
			VY:      math.Sin(angle) * magnitude,
			Life:    life,
			MaxLife: life,
			Size:    1.8 + rng.Float64()*3.5,
			Color:   c,
		})
	}
}

// Update ages, moves and drags particles, dropping any whose life ran out.
func (ps *Particles) Update(dt float64) {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= particleDrag
		p.VY *= particleDrag
		kept = append(kept, p)
	}
	ps.items = kept
}
