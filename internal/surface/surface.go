package surface

import (
	"errors"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// ErrInvalidSize is returned by Resize for zero or negative dimensions.
// The surface keeps its previous size.
var ErrInvalidSize = errors.New("surface: dimensions must be positive")

type Surface interface {
	Size() (w, h int)
	Resize(w, h int) error

	Clear()
	FillGradient(g Gradient)

	StrokeLine(x1, y1, x2, y2 float64, st Stroke)
	StrokeCircle(x, y, r float64, st Stroke)
	FillCircle(x, y, r float64, c Color)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
}

// Color is a straight (non-premultiplied) colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// HSLA builds a colour the way CSS hsla() does: hue in degrees, saturation
// and lightness in percent, alpha in [0, 1]. Alpha is clamped.
func HSLA(h, s, l, a float64) Color {
	c := gg.HSL(h, clamp01(s/100), clamp01(l/100))
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// RGBA8 builds a colour from 8-bit channels, like CSS rgba().
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: clamp01(a),
	}
}

// Hex parses "#rrggbb" style strings.
func Hex(s string) Color {
	c := gg.Hex(s)
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) GG() gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

type Stroke struct {
	Color Color
	Width float64
}

type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is a linear gradient from (X0, Y0) to (X1, Y1) in surface space.
type Gradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// At returns the interpolated colour at offset t, padded at both ends.
func (g Gradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t == b.Offset {
			return b.Color
		}
		if t < b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			f := (t - a.Offset) / span
			return Color{
				R: a.Color.R + (b.Color.R-a.Color.R)*f,
				G: a.Color.G + (b.Color.G-a.Color.G)*f,
				B: a.Color.B + (b.Color.B-a.Color.B)*f,
				A: a.Color.A + (b.Color.A-a.Color.A)*f,
			}
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
