package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/fractalfx/internal/surface"
	"github.com/san-kum/fractalfx/internal/viz"
)

// SVG is a surface that accumulates SVG elements. Coordinates are
// transformed on write, so the document has no nested groups.
type SVG struct {
	surface.Stack
	w, h      int
	gradients int
	defs      strings.Builder
	body      strings.Builder
	elements  int
}

func NewSVG(w, h int) *SVG {
	return &SVG{Stack: surface.NewStack(surface.Identity()), w: w, h: h}
}

func (s *SVG) Size() (int, int) { return s.w, s.h }

func (s *SVG) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return surface.ErrInvalidSize
	}
	s.w, s.h = w, h
	return nil
}

// Clear drops everything drawn so far.
func (s *SVG) Clear() {
	s.defs.Reset()
	s.body.Reset()
	s.gradients = 0
	s.elements = 0
}

// FillGradient covers the whole document, so earlier elements are dropped.
func (s *SVG) FillGradient(g surface.Gradient) {
	s.Clear()
	id := fmt.Sprintf("g%d", s.gradients)
	s.gradients++

	fmt.Fprintf(&s.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
		id, num(g.X0), num(g.Y0), num(g.X1), num(g.Y1))
	for _, st := range g.Stops {
		fmt.Fprintf(&s.defs, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			num(st.Offset), hex(st.Color), num(st.Color.A))
	}
	s.defs.WriteString("</linearGradient>\n")

	fmt.Fprintf(&s.body, `<rect width="%d" height="%d" fill="url(#%s)"/>`+"\n", s.w, s.h, id)
	s.elements++
}

func (s *SVG) StrokeLine(x1, y1, x2, y2 float64, st surface.Stroke) {
	ax, ay := s.Project(x1, y1)
	bx, by := s.Project(x2, y2)
	fmt.Fprintf(&s.body, `<line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
		num(ax), num(ay), num(bx), num(by), s.stroke(st))
	s.elements++
}

func (s *SVG) StrokeCircle(x, y, r float64, st surface.Stroke) {
	if r <= 0 {
		return
	}
	cx, cy := s.Project(x, y)
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="none" %s/>`+"\n",
		num(cx), num(cy), num(s.Length(r)), s.stroke(st))
	s.elements++
}

func (s *SVG) FillCircle(x, y, r float64, c surface.Color) {
	if r <= 0 {
		return
	}
	cx, cy := s.Project(x, y)
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		num(cx), num(cy), num(s.Length(r)), hex(c), num(c.A))
	s.elements++
}

// Elements is the number of drawn elements in the document.
func (s *SVG) Elements() int { return s.elements }

func (s *SVG) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.w, s.h, s.w, s.h)
	if s.defs.Len() > 0 {
		b.WriteString("<defs>\n" + s.defs.String() + "</defs>\n")
	}
	b.WriteString(s.body.String())
	b.WriteString("</svg>\n")
	return b.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s *SVG) stroke(st surface.Stroke) string {
	return fmt.Sprintf(`stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round"`,
		hex(st.Color), num(st.Color.A), num(s.Length(st.Width)))
}

func hex(c surface.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// num formats with at most three decimals and no trailing zeros.
func num(v float64) string {
	if math.Abs(v) < 5e-4 {
		return "0"
	}
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// CanvasToSVG converts a Braille canvas to SVG, one dot per set Braille
// dot, scale pixels per dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fg string) string {
	if canvas == nil {
		return ""
	}

	dotsW, dotsH := canvas.Dots()
	width := float64(dotsW) * scale
	height := float64(dotsH) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0015"/>
<g fill="%s">
`, width, height, width, height, fg)

	dotRadius := scale * 0.4
	for y := 0; y < dotsH; y++ {
		for x := 0; x < dotsW; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
