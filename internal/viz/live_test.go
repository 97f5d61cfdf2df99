package viz

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fractalfx/internal/scene"
)

func newTestModel(t *testing.T, sceneName string) Model {
	t.Helper()
	m, err := NewModel(scene.NewRegistry(), Options{Scene: sceneName, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelUnknownScene(t *testing.T) {
	_, err := NewModel(scene.NewRegistry(), Options{Scene: "nope"})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel(t, "interactive")

	m, cmd := update(m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Loop().Clock().Frame != 1 {
		t.Errorf("expected frame 1, got %d", m.Loop().Clock().Frame)
	}
	if m.Last().Ops != 426 {
		t.Errorf("expected 426 ops, got %d", m.Last().Ops)
	}
	if m.Surface().Canvas.Count() == 0 {
		t.Error("nothing plotted")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, "interactive")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Running() {
		t.Fatal("space should pause")
	}
	m, _ = update(m, TickMsg(time.Now()))
	if m.Loop().Clock().Frame != 0 {
		t.Error("paused model advanced the clock")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view does not show paused status")
	}
}

func TestModelMouseSpawnsRipple(t *testing.T) {
	m := newTestModel(t, "ripples")

	m, _ = update(m, tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionMotion})
	m, _ = update(m, tea.MouseMsg{X: 500, Y: 3, Action: tea.MouseActionMotion})
	m, _ = update(m, TickMsg(time.Now()))

	if m.Last().Live != 1 {
		t.Errorf("expected 1 ripple, got %d", m.Last().Live)
	}
}

func TestModelMouseBelowHelp(t *testing.T) {
	m := newTestModel(t, "ripples")
	m, _ = update(m, key("?"))

	// over the help text, not the canvas
	m, _ = update(m, tea.MouseMsg{X: 4, Y: helpHeight - 1, Action: tea.MouseActionMotion})
	m, _ = update(m, TickMsg(time.Now()))
	if m.Last().Live != 0 {
		t.Errorf("pointer over help spawned %d ripples", m.Last().Live)
	}

	// last canvas row, shifted down by the help block
	m, _ = update(m, tea.MouseMsg{X: 4, Y: m.rows + helpHeight - 1, Action: tea.MouseActionMotion})
	m, _ = update(m, TickMsg(time.Now()))
	if m.Last().Live != 1 {
		t.Errorf("expected 1 ripple on the last canvas row, got %d", m.Last().Live)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, "page")

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	cols := 100 - PanelWidth - panelChrome
	if w, h := m.Surface().Size(); w != cols*2 || h != 120 {
		t.Errorf("surface %dx%d after resize, want %dx120", w, h, cols*2)
	}

	before, _ := m.Surface().Size()
	m, _ = update(m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if w, _ := m.Surface().Size(); w != before {
		t.Error("too-small terminal should keep the previous size")
	}

	m, _ = update(m, TickMsg(time.Now()))
	if m.Last().Ops == 0 {
		t.Error("no frame drawn after resize")
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, "interactive")

	m, _ = update(m, key("t"))
	if m.Theme().Name != Themes[1].Name {
		t.Errorf("expected theme %s, got %s", Themes[1].Name, m.Theme().Name)
	}

	m, _ = update(m, TickMsg(time.Now()))
	m, _ = update(m, key("r"))
	if m.Loop().Clock().Frame != 0 {
		t.Error("r should rewind the clock")
	}

	m, _ = update(m, key("g"))
	if !m.Recording() {
		t.Error("g should start recording")
	}

	m, cmd := update(m, key("q"))
	if cmd == nil || !m.Loop().Stopped() {
		t.Error("q should stop the loop and quit")
	}
	if _, cmd := update(m, TickMsg(time.Now())); cmd != nil {
		t.Error("stopped model should not schedule ticks")
	}
}

func TestModelSnapshot(t *testing.T) {
	var got *Canvas
	m, err := NewModel(scene.NewRegistry(), Options{
		Scene: "background",
		Snapshot: func(c *Canvas) (string, error) {
			got = c
			return "frame.svg", nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	m, _ = update(m, key("s"))
	if got != m.Surface().Canvas {
		t.Error("snapshot not called with the live canvas")
	}
	if !strings.Contains(m.View(), "saved frame.svg") {
		t.Error("view does not report the snapshot")
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	img := CanvasImage(c, 8, 16, color.White)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if img.ColorIndexAt(0, 0) != 1 || img.ColorIndexAt(3, 3) != 1 {
		t.Error("dot 1 not filled")
	}
	if img.ColorIndexAt(4, 0) != 0 {
		t.Error("dot 4 should be empty")
	}
	if img.ColorIndexAt(15, 15) != 1 {
		t.Error("dot 8 of the second cell not filled")
	}
}
