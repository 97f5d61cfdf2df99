package fractal

import "github.com/san-kum/fractalfx/internal/surface"

const (
	PatternRadius     = 100.0
	PatternIterations = 5
	PatternDivisor    = 3.0
	MinSize           = 2.0 // px; smaller nodes are not drawn

	parentHueStep   = 20.0
	parentAlphaBase = 0.3
	parentAlphaStep = 0.1
	childHue        = 280.0
	childHueStep    = 15.0
	childAlphaBase  = 0.2
	childAlphaStep  = 0.08
)

// quadrants are the diagonal child offsets in units of size/2.
var quadrants = [4][2]float64{
	{-1, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
}

// DrawPattern draws one node of the nested-circle pattern: a circle of
// radius size, four satellite circles of radius size/3 at diagonal offsets
// of size/2, and, while iterations > 1, a recursive pattern inside each
// satellite with iterations-1. Nothing is drawn when iterations <= 0 or
// size < MinSize.
func DrawPattern(s surface.Surface, x, y, size float64, iterations int) {
	if iterations <= 0 || size < MinSize {
		return
	}

	s.StrokeCircle(x, y, size, ParentStroke(iterations))

	half := size / 2
	child := size / PatternDivisor
	st := ChildStroke(iterations)
	for _, q := range quadrants {
		cx, cy := x+q[0]*half, y+q[1]*half
		s.StrokeCircle(cx, cy, child, st)
		if iterations > 1 {
			DrawPattern(s, cx, cy, child, iterations-1)
		}
	}
}

// DrawInteractive clears s and draws the default pattern centred on the
// surface, rotated by rotation radians as a single global transform.
func DrawInteractive(s surface.Surface, rotation float64) {
	w, h := s.Size()
	s.Clear()
	s.Push()
	s.Translate(float64(w)/2, float64(h)/2)
	s.Rotate(rotation)
	DrawPattern(s, 0, 0, PatternRadius, PatternIterations)
	s.Pop()
}

// CircleCount is the number of circles DrawPattern strokes for (size, iterations).
func CircleCount(size float64, iterations int) int {
	if iterations <= 0 || size < MinSize {
		return 0
	}
	n := 1 + len(quadrants)
	if iterations > 1 {
		n += len(quadrants) * CircleCount(size/PatternDivisor, iterations-1)
	}
	return n
}

func ParentStroke(iterations int) surface.Stroke {
	k := float64(iterations)
	return surface.Stroke{
		Color: surface.HSLA(BaseHue+k*parentHueStep, 70, 50, parentAlphaBase+k*parentAlphaStep),
		Width: 2,
	}
}

func ChildStroke(iterations int) surface.Stroke {
	k := float64(iterations)
	return surface.Stroke{
		Color: surface.HSLA(childHue+k*childHueStep, 60, 60, childAlphaBase+k*childAlphaStep),
		Width: 1,
	}
}
