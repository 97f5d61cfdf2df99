package viz

import (
	"math"

	"github.com/san-kum/fractalfx/internal/surface"
)

// MinAlpha is the opacity below which primitives are not plotted. Braille
// dots are on or off, so faint strokes are dropped instead of dithered.
const MinAlpha = 0.1

// Braille is a surface that plots onto a Canvas. The logical size is in
// surface pixels; Scale dots are plotted per logical pixel.
type Braille struct {
	surface.Stack
	Canvas *Canvas
	Scale  float64
	w, h   int
}

func NewBraille(w, h int, scale float64) *Braille {
	if scale <= 0 {
		scale = 1
	}
	b := &Braille{
		Stack:  surface.NewStack(surface.ScaleMatrix(scale, scale)),
		Canvas: NewCanvas(0, 0),
		Scale:  scale,
	}
	b.resize(max(w, 1), max(h, 1))
	return b
}

// BrailleForCells sizes a surface to fill cols x rows terminal cells.
func BrailleForCells(cols, rows int, scale float64) *Braille {
	if scale <= 0 {
		scale = 1
	}
	return NewBraille(LogicalSize(cols, rows, scale))
}

// LogicalSize converts a cell grid to logical pixels at scale dots per pixel.
func LogicalSize(cols, rows int, scale float64) (int, int) {
	return max(int(float64(cols*2)/scale), 1), max(int(float64(rows*4)/scale), 1)
}

func (b *Braille) Size() (int, int) { return b.w, b.h }

func (b *Braille) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return surface.ErrInvalidSize
	}
	b.resize(w, h)
	return nil
}

func (b *Braille) resize(w, h int) {
	b.w, b.h = w, h
	cols := int(math.Ceil(float64(w) * b.Scale / 2))
	rows := int(math.Ceil(float64(h) * b.Scale / 4))
	b.Canvas.Resize(cols, rows)
	b.Stack.Reset()
}

func (b *Braille) Clear() { b.Canvas.Clear() }

// FillGradient blanks the canvas; the terminal background stands in for
// the gradient.
func (b *Braille) FillGradient(g surface.Gradient) { b.Canvas.Clear() }

func (b *Braille) StrokeLine(x1, y1, x2, y2 float64, st surface.Stroke) {
	if st.Color.A < MinAlpha {
		return
	}
	ax, ay := b.Project(x1, y1)
	bx, by := b.Project(x2, y2)
	b.Canvas.DrawLine(round(ax), round(ay), round(bx), round(by))
}

func (b *Braille) StrokeCircle(x, y, r float64, st surface.Stroke) {
	if st.Color.A < MinAlpha {
		return
	}
	cx, cy := b.Project(x, y)
	b.Canvas.DrawCircle(cx, cy, b.Length(r))
}

func (b *Braille) FillCircle(x, y, r float64, c surface.Color) {
	if c.A < MinAlpha {
		return
	}
	cx, cy := b.Project(x, y)
	b.Canvas.FillCircle(cx, cy, b.Length(r))
}

// Cell converts a terminal cell position to logical surface coordinates,
// taking the centre of the cell.
func (b *Braille) Cell(col, row int) (float64, float64) {
	return (float64(col)*2 + 1) / b.Scale, (float64(row)*4 + 2) / b.Scale
}

func (b *Braille) String() string { return b.Canvas.String() }
