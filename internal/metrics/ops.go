package metrics

import "github.com/san-kum/fractalfx/internal/scene"

// DrawOps is the mean number of drawing primitives per frame.
type DrawOps struct {
	name    string
	samples int
	total   int
	max     int
}

func NewDrawOps() *DrawOps {
	return &DrawOps{name: "draw_ops"}
}

func (d *DrawOps) Name() string { return d.name }

func (d *DrawOps) Observe(f scene.FrameStats) {
	d.total += f.Ops
	d.samples++
	if f.Ops > d.max {
		d.max = f.Ops
	}
}

func (d *DrawOps) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return float64(d.total) / float64(d.samples)
}

func (d *DrawOps) Max() int { return d.max }

func (d *DrawOps) Reset() {
	d.total = 0
	d.samples = 0
	d.max = 0
}
