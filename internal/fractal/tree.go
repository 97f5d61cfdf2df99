package fractal

import (
	"math"

	"github.com/san-kum/fractalfx/internal/surface"
)

const (
	BaseHue = 260.0

	TreeDepth     = 8
	TreeUnit      = 8.0  // branch length per remaining depth level, px
	TreeSpread    = 25.0 // degrees
	TreeSway      = 10.0 // degrees
	TreeHeading   = -90.0
	treeHueStep   = 10.0
	treeSat       = 70.0
	treeLightBase = 40.0
	treeLightStep = 5.0
	treeAlphaBase = 0.2
	treeAlphaStep = 0.05
	treeWidthStep = 0.5
)

// Segment is one drawn branch.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Depth          int
}

// Tree holds the branching parameters. Angles are in degrees, 0 along +x,
// increasing clockwise in screen space (y grows downward).
type Tree struct {
	Unit   float64
	Spread float64
	Sway   float64
}

func DefaultTree() Tree {
	return Tree{Unit: TreeUnit, Spread: TreeSpread, Sway: TreeSway}
}

// Draw strokes the tree rooted at (x, y) with the given heading. A node at
// depth d > 0 draws one branch of length d*Unit and recurses twice with
// depth d-1, so depth d draws 2^d - 1 branches in total.
func (t Tree) Draw(s surface.Surface, x, y, angle float64, depth int, time float64) {
	t.walk(x, y, angle, depth, t.sway(time), func(seg Segment) {
		s.StrokeLine(seg.X1, seg.Y1, seg.X2, seg.Y2, BranchStroke(seg.Depth))
	})
}

// Segments returns the branches Draw would stroke, in drawing order.
func (t Tree) Segments(x, y, angle float64, depth int, time float64) []Segment {
	var out []Segment
	t.walk(x, y, angle, depth, t.sway(time), func(seg Segment) {
		out = append(out, seg)
	})
	return out
}

func (t Tree) sway(time float64) float64 {
	return math.Sin(time) * t.Sway
}

func (t Tree) walk(x, y, angle float64, depth int, sway float64, emit func(Segment)) {
	if depth <= 0 {
		return
	}

	length := float64(depth) * t.Unit
	rad := angle * math.Pi / 180
	endX := x + math.Cos(rad)*length
	endY := y + math.Sin(rad)*length

	emit(Segment{X1: x, Y1: y, X2: endX, Y2: endY, Depth: depth})

	t.walk(endX, endY, angle-t.Spread+sway, depth-1, sway, emit)
	t.walk(endX, endY, angle+t.Spread-sway, depth-1, sway, emit)
}

// BranchStroke is the stroke for a branch at the given remaining depth:
// thicker, lighter and more opaque toward the trunk.
func BranchStroke(depth int) surface.Stroke {
	d := float64(depth)
	return surface.Stroke{
		Color: surface.HSLA(
			BaseHue+d*treeHueStep,
			treeSat,
			treeLightBase+d*treeLightStep,
			treeAlphaBase+d*treeAlphaStep,
		),
		Width: d * treeWidthStep,
	}
}

// DrawTree draws the default tree.
func DrawTree(s surface.Surface, x, y, angle float64, depth int, time float64) {
	DefaultTree().Draw(s, x, y, angle, depth, time)
}
