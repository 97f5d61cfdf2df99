package effects

import "github.com/san-kum/fractalfx/internal/surface"

const (
	RippleGrowth = 2.0 // px per step
	RippleFade   = 2   // opacity hundredths per step
	RippleWidth  = 2.0
)

// Ripple is an expanding ring that fades out. Opacity is kept in integer
// hundredths so a ripple always finishes after exactly 100/RippleFade steps.
type Ripple struct {
	X, Y   float64
	Radius float64
	alpha  int
}

func NewRipple(x, y float64) *Ripple {
	return &Ripple{X: x, Y: y, alpha: 100}
}

func (r *Ripple) Opacity() float64 { return float64(r.alpha) / 100 }
func (r *Ripple) Done() bool       { return r.alpha <= 0 }

// Step draws the ring at its current radius and opacity, then grows and
// fades it. It returns false once the ripple is finished; a finished ripple
// draws nothing.
func (r *Ripple) Step(s surface.Surface) bool {
	if r.Done() {
		return false
	}

	c := Violet
	c.A = r.Opacity()
	s.StrokeCircle(r.X, r.Y, r.Radius, surface.Stroke{Color: c, Width: RippleWidth})

	r.Radius += RippleGrowth
	r.alpha -= RippleFade
	return !r.Done()
}

// Ripples tracks live ripples. Spawns beyond Max are dropped; Max <= 0
// means unbounded.
type Ripples struct {
	Max  int
	live []*Ripple
}

func NewRipples(max int) *Ripples {
	return &Ripples{Max: max}
}

// Spawn starts a ripple at (x, y) and reports whether it was accepted.
func (rs *Ripples) Spawn(x, y float64) bool {
	if rs.Max > 0 && len(rs.live) >= rs.Max {
		return false
	}
	rs.live = append(rs.live, NewRipple(x, y))
	return true
}

// Step advances every live ripple one frame and discards finished ones.
func (rs *Ripples) Step(s surface.Surface) {
	kept := rs.live[:0]
	for _, r := range rs.live {
		if r.Step(s) {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(rs.live); i++ {
		rs.live[i] = nil
	}
	rs.live = kept
}

func (rs *Ripples) Len() int { return len(rs.live) }

func (rs *Ripples) Reset() {
	clear(rs.live)
	rs.live = rs.live[:0]
}
