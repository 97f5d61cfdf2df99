package fractal

import (
	"math"
	"math/rand"

	"github.com/san-kum/fractalfx/internal/surface"
)

const (
	SpeckleCount = 50

	speckleHueSwing   = 20.0
	speckleLightBase  = 50.0
	speckleLightSwing = 20.0
	speckleAlpha      = 0.3
)

var (
	bgEdge = surface.Hex("#0a0015")
	bgMid  = surface.Hex("#1a0033")
)

// Background paints the animated page background: a diagonal gradient,
// a scatter of softly pulsing speckles and the swaying tree anchored at the
// bottom centre. Speckle positions come from the injected source, so two
// backgrounds built with the same seed draw identical frames.
type Background struct {
	Speckles int
	Tree     Tree
	Depth    int

	rng *rand.Rand
}

func NewBackground(seed int64) *Background {
	return &Background{
		Speckles: SpeckleCount,
		Tree:     DefaultTree(),
		Depth:    TreeDepth,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (b *Background) Draw(s surface.Surface, time float64) {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)

	s.FillGradient(Gradient(fw, fh))

	for i := 0; i < b.Speckles; i++ {
		x := b.rng.Float64() * fw
		y := b.rng.Float64() * fh
		fi := float64(i)
		c := surface.HSLA(
			BaseHue+math.Sin(time+fi*0.1)*speckleHueSwing,
			70,
			speckleLightBase+math.Sin(time+fi*0.2)*speckleLightSwing,
			speckleAlpha,
		)
		s.FillCircle(x, y, SpeckleRadius(i, time), c)
	}

	b.Tree.Draw(s, fw/2, fh, TreeHeading, b.Depth, time)
}

// SpeckleRadius pulses between 1 and 5 px.
func SpeckleRadius(i int, time float64) float64 {
	return math.Sin(time+float64(i))*2 + 3
}

// Gradient is the background wash from the top-left to the bottom-right corner.
func Gradient(w, h float64) surface.Gradient {
	return surface.Gradient{
		X0: 0, Y0: 0, X1: w, Y1: h,
		Stops: []surface.Stop{
			{Offset: 0, Color: bgEdge},
			{Offset: 0.5, Color: bgMid},
			{Offset: 1, Color: bgEdge},
		},
	}
}
