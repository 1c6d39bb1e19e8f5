package game

import (
	"image/color"
	"math"
)

// Particle is a short-lived spark. Life runs from 1 down to 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  color.RGBA
}

// ParticleSystem holds every live particle. There is no cap; bursts are small
// and decay within a second.
type ParticleSystem struct {
	p []Particle
}

// NewParticleSystem returns an empty system.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Burst spawns a ring of particles around (x, y), evenly spaced and moving
// outward at the same speed.
func (ps *ParticleSystem) Burst(x, y float64, col color.RGBA) {
	for i := 0; i < burstSize; i++ {
		angle := 2 * math.Pi * float64(i) / burstSize
		ps.p = append(ps.p, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * particleSpeed,
			VY:    math.Sin(angle) * particleSpeed,
			Life:  1,
			Color: col,
		})
	}
}

// Update moves and ages every particle, dropping those that have expired.
func (ps *ParticleSystem) Update() {
	kept := ps.p[:0]
	for _, p := range ps.p {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= particleDecay
		if p.Life <= lifeEpsilon {
			continue
		}
		kept = append(kept, p)
	}
	// Zero the tail so dropped particles don't linger in the backing array.
	for i := len(kept); i < len(ps.p); i++ {
		ps.p[i] = Particle{}
	}
	ps.p = kept
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.p)
}

// Particles returns a copy of the live particles for rendering.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.p))
	copy(out, ps.p)
	return out
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.p = ps.p[:0]
}
