package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/fractalfx/internal/surface"
)

// stripHeight is the height of the horizontal bands a gradient fill is
// split into. Each band is a left-to-right raylib gradient.
const stripHeight = 8

// Surface draws with raylib immediate-mode calls. Transforms are applied on
// the CPU so that rings keep their stroke width under rotation.
type Surface struct {
	surface.Stack
	w, h int
}

func NewSurface(w, h int) *Surface {
	return &Surface{Stack: surface.NewStack(surface.Identity()), w: w, h: h}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

// Resize only records the new size; the window owns the framebuffer.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return surface.ErrInvalidSize
	}
	s.w, s.h = w, h
	return nil
}

func (s *Surface) Clear() { rl.ClearBackground(ColBg) }

func (s *Surface) FillGradient(g surface.Gradient) {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	at := func(x, y float64) rl.Color {
		if den == 0 {
			return toRL(g.At(0))
		}
		return toRL(g.At(((x-g.X0)*dx + (y-g.Y0)*dy) / den))
	}

	for y := 0; y < s.h; y += stripHeight {
		h := min(stripHeight, s.h-y)
		mid := float64(y) + float64(h)/2
		rl.DrawRectangleGradientH(0, int32(y), int32(s.w), int32(h), at(0, mid), at(float64(s.w), mid))
	}
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, st surface.Stroke) {
	ax, ay := s.Project(x1, y1)
	bx, by := s.Project(x2, y2)
	rl.DrawLineEx(vec(ax, ay), vec(bx, by), float32(s.Length(st.Width)), toRL(st.Color))
}

func (s *Surface) StrokeCircle(x, y, r float64, st surface.Stroke) {
	if r <= 0 {
		return
	}
	cx, cy := s.Project(x, y)
	r, half := s.Length(r), s.Length(st.Width)/2
	segments := int32(max(16, min(int(r), 180)))
	rl.DrawRing(vec(cx, cy), float32(math.Max(r-half, 0)), float32(r+half), 0, 360, segments, toRL(st.Color))
}

func (s *Surface) FillCircle(x, y, r float64, c surface.Color) {
	if r <= 0 {
		return
	}
	cx, cy := s.Project(x, y)
	rl.DrawCircleV(vec(cx, cy), float32(s.Length(r)), toRL(c))
}

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

func toRL(c surface.Color) rl.Color {
	n := c.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
