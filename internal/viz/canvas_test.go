package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 in first cell, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8 in second cell, got %U", c.Grid[0][1])
	}
	if !c.Lit(3, 3) || c.Lit(2, 3) {
		t.Error("Lit disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank cell after Unset, got %U", c.Grid[0][0])
	}

	// out of range writes are ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.Count() != 1 {
		t.Errorf("expected 1 dot, got %d", c.Count())
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 1)
	c.Resize(10, 3)

	if c.Width != 10 || c.Height != 3 || len(c.Grid) != 3 || len(c.Grid[0]) != 10 {
		t.Fatalf("unexpected grid after resize: %dx%d", c.Width, c.Height)
	}
	if c.Count() != 0 {
		t.Error("resize should blank the grid")
	}
	if w, h := c.Dots(); w != 20 || h != 12 {
		t.Errorf("Dots() = %d, %d", w, h)
	}
	if lines := strings.Count(c.String(), "\n"); lines != 3 {
		t.Errorf("expected 3 rows, got %d", lines)
	}
}

func TestCanvasLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		dots           int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 9, 0, 10},
		{"vertical", 0, 0, 0, 7, 8},
		{"diagonal", 0, 0, 7, 7, 8},
		{"reversed", 7, 7, 0, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 4)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if c.Count() != tt.dots {
				t.Errorf("expected %d dots, got %d", tt.dots, c.Count())
			}
			if !c.Lit(tt.x0, tt.y0) || !c.Lit(tt.x1, tt.y1) {
				t.Error("line endpoints not set")
			}
		})
	}
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 10)

	for _, p := range [][2]int{{30, 20}, {10, 20}, {20, 10}, {20, 30}} {
		if !c.Lit(p[0], p[1]) {
			t.Errorf("expected dot at %v", p)
		}
	}
	if c.Lit(20, 20) {
		t.Error("outline should not set the centre")
	}

	c.Clear()
	c.DrawCircle(5, 5, 0)
	if c.Count() != 0 {
		t.Error("zero radius should draw nothing")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(20, 20, 3)

	if !c.Lit(20, 20) || !c.Lit(23, 20) || !c.Lit(20, 17) {
		t.Error("disc missing interior or edge dots")
	}
	if c.Lit(23, 23) {
		t.Error("disc should not reach the bounding box corner")
	}

	c.Clear()
	c.FillCircle(4.4, 4.4, 0.3)
	if c.Count() != 1 || !c.Lit(4, 4) {
		t.Error("tiny disc should set its centre dot")
	}
}
