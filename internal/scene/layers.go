package scene

import (
	"math/rand"

	"github.com/san-kum/fractalfx/internal/effects"
	"github.com/san-kum/fractalfx/internal/fractal"
	"github.com/san-kum/fractalfx/internal/surface"
)

// BackgroundLayer paints the gradient, speckles and swaying tree.
type BackgroundLayer struct {
	seed int64
	bg   *fractal.Background
}

func NewBackgroundLayer(seed int64) *BackgroundLayer {
	return &BackgroundLayer{seed: seed, bg: fractal.NewBackground(seed)}
}

func (b *BackgroundLayer) Name() string { return "background" }

func (b *BackgroundLayer) Draw(s surface.Surface, c Clock) {
	b.bg.Draw(s, c.Time())
}

func (b *BackgroundLayer) Reset() { b.bg = fractal.NewBackground(b.seed) }

// PatternLayer clears the surface and draws the rotating nested circles.
type PatternLayer struct{}

func (PatternLayer) Name() string { return "pattern" }

func (PatternLayer) Draw(s surface.Surface, c Clock) {
	fractal.DrawInteractive(s, c.Rotation())
}

// ParticleLayer moves and draws the particle field, wrapping against the
// current surface size.
type ParticleLayer struct {
	seed  int64
	n     int
	w, h  int
	field *effects.ParticleField
}

func NewParticleLayer(n, w, h int, seed int64) *ParticleLayer {
	p := &ParticleLayer{seed: seed, n: n, w: w, h: h}
	p.Reset()
	return p
}

func (p *ParticleLayer) Name() string { return "particles" }

func (p *ParticleLayer) Draw(s surface.Surface, c Clock) {
	w, h := s.Size()
	p.field.Update(w, h)
	p.field.Draw(s)
}

func (p *ParticleLayer) Reset() {
	p.field = effects.NewParticleField(p.n, p.w, p.h, rand.New(rand.NewSource(p.seed)))
}

func (p *ParticleLayer) Field() *effects.ParticleField { return p.field }

// RippleLayer spawns a ripple on every pointer move and steps live ripples.
type RippleLayer struct {
	ripples *effects.Ripples
}

func NewRippleLayer(max int) *RippleLayer {
	return &RippleLayer{ripples: effects.NewRipples(max)}
}

func (r *RippleLayer) Name() string { return "ripples" }

func (r *RippleLayer) Draw(s surface.Surface, c Clock) { r.ripples.Step(s) }

func (r *RippleLayer) PointerMove(x, y float64) { r.ripples.Spawn(x, y) }

func (r *RippleLayer) Live() int { return r.ripples.Len() }

func (r *RippleLayer) Reset() { r.ripples.Reset() }

// ClearLayer wipes the surface to transparent.
type ClearLayer struct{}

func (ClearLayer) Name() string { return "clear" }

func (ClearLayer) Draw(s surface.Surface, c Clock) { s.Clear() }
