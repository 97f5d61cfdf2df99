package effects

import (
	"math/rand"

	"github.com/san-kum/fractalfx/internal/surface"
)

const (
	ParticleCount = 50
	ParticleSpeed = 0.25 // max |velocity| per axis, px/frame
)

// Violet is the tint shared by particles and ripples.
var Violet = surface.RGBA8(138, 43, 226, 1)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// ParticleField is a set of independent drifting discs that wrap around
// the surface edges. Particles never interact.
type ParticleField struct {
	Particles []Particle
}

// NewParticleField scatters n particles uniformly over a w x h surface.
func NewParticleField(n, w, h int, rng *rand.Rand) *ParticleField {
	f := &ParticleField{Particles: make([]Particle, n)}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:       rng.Float64() * float64(w),
			Y:       rng.Float64() * float64(h),
			VX:      (rng.Float64() - 0.5) * 2 * ParticleSpeed,
			VY:      (rng.Float64() - 0.5) * 2 * ParticleSpeed,
			Radius:  rng.Float64()*2 + 1,
			Opacity: rng.Float64()*0.5 + 0.2,
		}
	}
	return f
}

// Update advances every particle by its velocity and wraps coordinates
// that left [0, w] x [0, h] to the opposite edge. A particle that is
// already outside (the surface shrank) is wrapped without moving.
func (f *ParticleField) Update(w, h int) {
	fw, fh := float64(w), float64(h)
	for i := range f.Particles {
		p := &f.Particles[i]
		if !wrap(p, fw, fh) {
			p.X += p.VX
			p.Y += p.VY
			wrap(p, fw, fh)
		}
	}
}

func (f *ParticleField) Draw(s surface.Surface) {
	for _, p := range f.Particles {
		c := Violet
		c.A = p.Opacity
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
}

func wrap(p *Particle, w, h float64) bool {
	wrapped := false
	if p.X < 0 {
		p.X, wrapped = w, true
	} else if p.X > w {
		p.X, wrapped = 0, true
	}
	if p.Y < 0 {
		p.Y, wrapped = h, true
	} else if p.Y > h {
		p.Y, wrapped = 0, true
	}
	return wrapped
}
