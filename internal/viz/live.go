package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractalfx/internal/metrics"
	"github.com/san-kum/fractalfx/internal/scene"
)

const (
	PanelWidth    = 34
	defaultCols   = 80
	defaultRows   = 24
	panelChrome   = 5 // panel border and padding
	graphSamples  = 120
	maxGIFFrames  = 600
	gifFrameDelay = 2
)

type TickMsg time.Time

// Options configure the live view.
type Options struct {
	Scene   string
	Seed    int64
	FPS     int
	Scale   float64 // Braille dots per surface pixel
	Theme   string
	GIFPath string
	Logger  *slog.Logger

	// Snapshot is called with the current canvas when s is pressed and
	// returns the path written.
	Snapshot func(c *Canvas) (string, error)
}

// Model runs a scene loop on a Braille surface inside a bubbletea program.
type Model struct {
	opts      Options
	loop      *scene.Loop
	surface   *Braille
	frameTime *metrics.FrameTime
	drawOps   *metrics.DrawOps
	last      scene.FrameStats
	cols      int
	rows      int
	theme     Theme
	styles    Styles
	running   bool
	recording bool
	frames    []*image.Paletted
	status    string
	showHelp  bool
}

func NewModel(reg *scene.Registry, opts Options) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "fractalfx.gif"
	}

	cols, rows := defaultCols-PanelWidth-panelChrome, defaultRows
	surf := BrailleForCells(cols, rows, opts.Scale)
	w, h := surf.Size()

	layers, err := reg.Build(opts.Scene, w, h, opts.Seed)
	if err != nil {
		return Model{}, err
	}

	loop := scene.New(surf, layers...)
	loop.SetLogger(opts.Logger)
	ft, ops := metrics.NewFrameTime(graphSamples), metrics.NewDrawOps()
	loop.AddMetric(ft)
	loop.AddMetric(ops)

	theme := GetTheme(opts.Theme)
	return Model{
		opts:      opts,
		loop:      loop,
		surface:   surf,
		frameTime: ft,
		drawOps:   ops,
		cols:      cols,
		rows:      rows,
		theme:     theme,
		styles:    NewStyles(theme),
		running:   true,
	}, nil
}

func (m Model) Loop() *scene.Loop      { return m.loop }
func (m Model) Surface() *Braille      { return m.surface }
func (m Model) Running() bool          { return m.running }
func (m Model) Theme() Theme           { return m.theme }
func (m Model) Recording() bool        { return m.recording }
func (m Model) Last() scene.FrameStats { return m.last }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the loop on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.loop.Stop()
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.loop.Reset()
			m.frameTime.Reset()
			m.drawOps.Reset()
			m.surface.Clear()
			m.status = "reset"
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = NewStyles(m.theme)
		case "s":
			m.snapshot()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			row := msg.Y
			if m.showHelp {
				row -= helpHeight
			}
			if msg.X < m.cols && row >= 0 && row < m.rows {
				m.loop.PointerMove(m.surface.Cell(msg.X, row))
			}
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.loop.Stopped() {
			return m, nil
		}
		if m.running {
			m.last = m.loop.Step()
			if m.recording {
				m.captureFrame()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// resize fits the canvas to a terminal of width x height cells, leaving
// room for the stats panel.
func (m *Model) resize(width, height int) {
	cols := width - PanelWidth - panelChrome
	rows := height
	if cols <= 0 || rows <= 0 {
		m.opts.Logger.Debug("terminal too small", "width", width, "height", height)
		return
	}
	w, h := LogicalSize(cols, rows, m.opts.Scale)
	if err := m.loop.Resize(w, h); err != nil {
		return
	}
	m.cols, m.rows = m.surface.Canvas.Width, m.surface.Canvas.Height
}

func (m *Model) snapshot() {
	if m.opts.Snapshot == nil {
		m.status = "snapshots disabled"
		return
	}
	path, err := m.opts.Snapshot(m.surface.Canvas)
	if err != nil {
		m.opts.Logger.Error("snapshot failed", "err", err)
		m.status = "snapshot failed"
		return
	}
	m.status = "saved " + path
}

// View renders the canvas with the stats panel on its right.
func (m Model) View() string {
	st := m.styles
	canvasView := st.Canvas.Render(strings.TrimSuffix(m.surface.String(), "\n"))

	var s strings.Builder
	s.WriteString(st.Header.Render(strings.ToUpper(m.opts.Scene)) + "\n")

	clock := m.loop.Clock()
	if m.running {
		s.WriteString(st.Running.Render(AnimatedSpinner(clock.Frame)+" RUNNING") + "\n\n")
	} else {
		s.WriteString(st.Paused.Render("■ PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.Label.Render(label) + st.Value.Render(value) + "\n")
	}
	w, h := m.surface.Size()
	row("Frame", fmt.Sprintf("%d", clock.Frame))
	row("Time", fmt.Sprintf("%.2f", clock.Time()))
	row("Rotation", fmt.Sprintf("%.1f°", clock.Rotation()*180/math.Pi))
	row("Surface", fmt.Sprintf("%dx%d", w, h))
	row("Ops", fmt.Sprintf("%d (avg %.0f)", m.last.Ops, m.drawOps.Value()))
	row("Ripples", fmt.Sprintf("%d", m.last.Live))
	row("Render", fmt.Sprintf("%.2fms", m.frameTime.Value()))

	budget := float64(time.Second/time.Duration(m.opts.FPS)) / float64(time.Millisecond)
	load := 0.0
	if budget > 0 {
		load = 1 - m.frameTime.Value()/budget
	}
	s.WriteString(st.Label.Render("Headroom") + st.ProgressBar(load, 12) + "\n")

	if recent := m.frameTime.Recent(); len(recent) > 1 {
		chart := asciigraph.Plot(recent, asciigraph.Height(4), asciigraph.Width(PanelWidth-10), asciigraph.Caption("frame ms"))
		s.WriteString(st.Graph.Render(chart) + "\n")
	}

	if m.status != "" {
		s.WriteString(st.Value.Render(m.status) + "\n")
	}
	s.WriteString(st.Help.Render(Separator(PanelWidth-4) + "\nSP:Pause R:Reset Q:Quit\nT:Theme S:Snap G:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.Panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

const helpText = `
  Space  pause / resume        T  cycle themes
  R      rewind the clock      S  save SVG snapshot
  Q      quit                  G  toggle GIF recording
  mouse  spawn ripples         ?  toggle this help
`

// helpHeight is the number of terminal rows View puts above the canvas when
// help is shown.
var helpHeight = strings.Count(helpText, "\n") + 1

// CanvasImage rasterises a canvas to a two-colour paletted image, charW x
// charH pixels per cell.
func CanvasImage(c *Canvas, charW, charH int, fg color.Color) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, fg})
	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r == blank {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if r&pixelMap[dy][dx] == 0 {
						continue
					}
					baseX, baseY := col*charW+dx*dotW, row*charH+dy*dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+px, baseY+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}

func (m *Model) captureFrame() {
	if len(m.frames) >= maxGIFFrames {
		m.frames = m.frames[1:]
	}
	m.frames = append(m.frames, CanvasImage(m.surface.Canvas, 8, 16, color.RGBA{138, 43, 226, 255}))
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, gifFrameDelay)
	}
	f, err := os.Create(m.opts.GIFPath)
	if err != nil {
		m.opts.Logger.Error("create gif", "path", m.opts.GIFPath, "err", err)
		m.status = "gif failed"
		return
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		m.opts.Logger.Error("encode gif", "err", err)
		m.status = "gif failed"
		return
	}
	m.status = fmt.Sprintf("saved %s (%d frames)", m.opts.GIFPath, len(m.frames))
}

// RunLive starts the live view in the alternate screen with mouse motion
// reporting enabled.
func RunLive(reg *scene.Registry, opts Options) error {
	m, err := NewModel(reg, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
