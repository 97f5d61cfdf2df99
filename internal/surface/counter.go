package surface

// Counter forwards to another surface and counts drawing primitives.
// Clear and FillGradient count as one op each.
type Counter struct {
	Surface
	ops int
}

func NewCounter(s Surface) *Counter {
	return &Counter{Surface: s}
}

func (c *Counter) Clear() {
	c.ops++
	c.Surface.Clear()
}

func (c *Counter) FillGradient(g Gradient) {
	c.ops++
	c.Surface.FillGradient(g)
}

func (c *Counter) StrokeLine(x1, y1, x2, y2 float64, st Stroke) {
	c.ops++
	c.Surface.StrokeLine(x1, y1, x2, y2, st)
}

func (c *Counter) StrokeCircle(x, y, r float64, st Stroke) {
	c.ops++
	c.Surface.StrokeCircle(x, y, r, st)
}

func (c *Counter) FillCircle(x, y, r float64, col Color) {
	c.ops++
	c.Surface.FillCircle(x, y, r, col)
}

func (c *Counter) Ops() int { return c.ops }

// Take returns the op count and resets it.
func (c *Counter) Take() int {
	n := c.ops
	c.ops = 0
	return n
}
