package fractal

import (
	"math"
	"testing"

	"github.com/san-kum/fractalfx/internal/surface"
)

func TestPatternCounts(t *testing.T) {
	tests := []struct {
		name       string
		size       float64
		iterations int
		want       int
	}{
		{"zero iterations", 100, 0, 0},
		{"negative iterations", 100, -2, 0},
		{"below min size", 1.9, 5, 0},
		{"single level", 10, 1, 5},
		{"two levels", 30, 2, 25},
		{"child below min size", 5, 2, 5},
		{"default", PatternRadius, PatternIterations, 425},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := surface.NewRecorder(300, 300)
			DrawPattern(rec, 0, 0, tt.size, tt.iterations)

			if got := rec.Count(surface.OpCircle); got != tt.want {
				t.Errorf("expected %d circles, got %d", tt.want, got)
			}
			if got := CircleCount(tt.size, tt.iterations); got != tt.want {
				t.Errorf("CircleCount = %d, want %d", got, tt.want)
			}
			if rec.Count(surface.OpLine) != 0 {
				t.Error("pattern should not stroke lines")
			}
		})
	}
}

func TestPatternNodeLayout(t *testing.T) {
	rec := surface.NewRecorder(300, 300)
	DrawPattern(rec, 10, 20, 60, 1)

	circles := rec.Filter(surface.OpCircle)
	if len(circles) != 5 {
		t.Fatalf("expected 5 circles, got %d", len(circles))
	}

	parent := circles[0]
	if parent.X1 != 10 || parent.Y1 != 20 || parent.R != 60 {
		t.Errorf("parent = %+v", parent)
	}
	if parent.Stroke != ParentStroke(1) || parent.Stroke.Width != 2 {
		t.Errorf("parent stroke = %+v", parent.Stroke)
	}

	wantCenters := [][2]float64{{-20, -10}, {40, -10}, {-20, 50}, {40, 50}}
	for i, c := range circles[1:] {
		if c.X1 != wantCenters[i][0] || c.Y1 != wantCenters[i][1] {
			t.Errorf("child %d at (%v, %v), want %v", i, c.X1, c.Y1, wantCenters[i])
		}
		if c.R != 20 {
			t.Errorf("child %d radius %v, want 20", i, c.R)
		}
		if c.Stroke != ChildStroke(1) || c.Stroke.Width != 1 {
			t.Errorf("child %d stroke = %+v", i, c.Stroke)
		}
	}
}

func TestPatternOpacityGrowsWithBudget(t *testing.T) {
	for k := 1; k < PatternIterations; k++ {
		if ParentStroke(k).Color.A >= ParentStroke(k+1).Color.A {
			t.Errorf("parent alpha not increasing at k=%d", k)
		}
		if ChildStroke(k).Color.A >= ChildStroke(k+1).Color.A {
			t.Errorf("child alpha not increasing at k=%d", k)
		}
	}
}

func TestDrawInteractive(t *testing.T) {
	rec := surface.NewRecorder(300, 200)
	DrawInteractive(rec, math.Pi/2)

	if rec.Ops[0].Kind != surface.OpClear {
		t.Errorf("first op = %v, want clear", rec.Ops[0].Kind)
	}
	if got := rec.Count(surface.OpCircle); got != 425 {
		t.Errorf("expected 425 circles, got %d", got)
	}
	if rec.Depth() != 0 {
		t.Errorf("transform stack not restored: depth %d", rec.Depth())
	}

	// root circle sits at the surface centre regardless of rotation
	root := rec.Filter(surface.OpCircle)[0]
	if !near(root.X1, 150) || !near(root.Y1, 100) || root.Depth != 1 {
		t.Errorf("root circle = %+v", root)
	}

	// the first child (-50, -50) rotated by 90 degrees lands at (+50, -50)
	child := rec.Filter(surface.OpCircle)[1]
	if !near(child.X1, 200) || !near(child.Y1, 50) {
		t.Errorf("rotated child at (%v, %v), want (200, 50)", child.X1, child.Y1)
	}
}
