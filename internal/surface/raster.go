package surface

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Raster is an anti-aliased software surface backed by a gg drawing context.
type Raster struct {
	dc  *gg.Context
	err error
}

func NewRaster(w, h int) *Raster {
	return &Raster{dc: gg.NewContext(w, h)}
}

func (r *Raster) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

func (r *Raster) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidSize
	}
	return r.dc.Resize(w, h)
}

func (r *Raster) Clear() { r.dc.Clear() }

func (r *Raster) FillGradient(g Gradient) {
	brush := gg.NewLinearGradientBrush(g.X0, g.Y0, g.X1, g.Y1)
	for _, s := range g.Stops {
		brush.AddColorStop(s.Offset, s.Color.GG())
	}
	w, h := r.Size()

	r.dc.Push()
	r.dc.Identity()
	r.dc.SetFillBrush(brush)
	r.dc.DrawRectangle(0, 0, float64(w), float64(h))
	r.track(r.dc.Fill())
	r.dc.Pop()
}

func (r *Raster) StrokeLine(x1, y1, x2, y2 float64, st Stroke) {
	r.setStroke(st)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.track(r.dc.Stroke())
}

func (r *Raster) StrokeCircle(x, y, radius float64, st Stroke) {
	if radius <= 0 {
		return
	}
	r.setStroke(st)
	r.dc.DrawCircle(x, y, radius)
	r.track(r.dc.Stroke())
}

func (r *Raster) FillCircle(x, y, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
	r.dc.DrawCircle(x, y, radius)
	r.track(r.dc.Fill())
}

func (r *Raster) Push()                  { r.dc.Push() }
func (r *Raster) Pop()                   { r.dc.Pop() }
func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(angle float64)   { r.dc.Rotate(angle) }

// Image returns a snapshot of the current pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

// Err returns the first rasterizer error seen since the last call, then clears it.
func (r *Raster) Err() error {
	err := r.err
	r.err = nil
	return err
}

func (r *Raster) setStroke(st Stroke) {
	r.dc.SetRGBA(st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	r.dc.SetLineWidth(st.Width)
}

func (r *Raster) track(err error) {
	if err != nil && r.err == nil {
		r.err = err
		gg.Logger().Warn("raster draw failed", "err", err)
	}
}
