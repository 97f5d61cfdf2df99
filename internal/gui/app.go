package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/fractalfx/internal/metrics"
	"github.com/san-kum/fractalfx/internal/scene"
)

var (
	ColBg      = rl.NewColor(10, 0, 21, 255) // page background, #0a0015
	ColAccent  = rl.NewColor(138, 43, 226, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(180, 160, 210, 255)
	ColTextDim = rl.NewColor(90, 75, 122, 255)
)

const telemetrySize = 200

type Options struct {
	Scene       string
	Seed        int64
	Width       int
	Height      int
	FPS         int
	Interactive bool // start in the scene menu
	Logger      *slog.Logger
}

// App is a resizable raylib window that runs one scene at a time. Frames
// are rendered into a texture so a paused scene keeps its last frame.
type App struct {
	Registry  *scene.Registry
	Scenes    []string
	Selected  int
	InMenu    bool
	Running   bool
	ShowHUD   bool
	Telemetry []float64

	opts      Options
	loop      *scene.Loop
	surf      *Surface
	frameTime *metrics.FrameTime
	target    rl.RenderTexture2D
	hasTarget bool
	quit      bool
}

func NewApp(reg *scene.Registry, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	scenes := reg.List()
	a := &App{
		Registry:  reg,
		Scenes:    scenes,
		InMenu:    opts.Interactive,
		ShowHUD:   true,
		Telemetry: make([]float64, 0, telemetrySize),
		opts:      opts,
	}
	for i, name := range scenes {
		if name == opts.Scene {
			a.Selected = i
		}
	}
	return a
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "fractalfx")
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(reg *scene.Registry, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	a := NewApp(reg, opts)
	if !opts.Interactive {
		if _, err := reg.Build(opts.Scene, 1, 1, 0); err != nil {
			return err
		}
	}

	initWindow(opts)
	defer rl.CloseWindow()
	defer a.unloadTarget()

	if !a.InMenu {
		if err := a.loadScene(opts.Scene); err != nil {
			return err
		}
	}
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
	if a.loop != nil {
		a.loop.Stop()
	}
}

func (a *App) loadScene(name string) error {
	w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
	layers, err := a.Registry.Build(name, w, h, a.opts.Seed)
	if err != nil {
		return err
	}

	a.surf = NewSurface(w, h)
	a.loop = scene.New(a.surf, layers...)
	a.loop.SetLogger(a.opts.Logger)
	a.frameTime = metrics.NewFrameTime(telemetrySize)
	a.loop.AddMetric(a.frameTime)
	a.opts.Scene = name
	a.Running = true
	a.reloadTarget(w, h)

	a.opts.Logger.Info("scene loaded", "scene", name, "width", w, "height", h)
	return nil
}

func (a *App) reloadTarget(w, h int) {
	a.unloadTarget()
	a.target = rl.LoadRenderTexture(int32(w), int32(h))
	a.hasTarget = true
}

func (a *App) unloadTarget() {
	if a.hasTarget {
		rl.UnloadRenderTexture(a.target)
		a.hasTarget = false
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	if a.InMenu {
		a.updateMenu()
		return
	}

	if rl.IsWindowResized() {
		w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
		if err := a.loop.Resize(w, h); err == nil {
			a.reloadTarget(w, h)
		}
	}

	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		p := rl.GetMousePosition()
		a.loop.PointerMove(float64(p.X), float64(p.Y))
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.Running = !a.Running
	case rl.IsKeyPressed(rl.KeyR):
		a.loop.Reset()
		a.frameTime.Reset()
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	case rl.IsKeyPressed(rl.KeyEscape):
		a.loop.Stop()
		a.InMenu = true
	}
}

func (a *App) updateMenu() {
	switch {
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ):
		a.Selected = (a.Selected + 1) % len(a.Scenes)
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK):
		a.Selected = (a.Selected - 1 + len(a.Scenes)) % len(a.Scenes)
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace):
		if err := a.loadScene(a.Scenes[a.Selected]); err != nil {
			a.opts.Logger.Error("load scene", "scene", a.Scenes[a.Selected], "err", err)
			return
		}
		a.InMenu = false
	}
}

func (a *App) Draw() {
	if !a.InMenu && a.Running {
		rl.BeginTextureMode(a.target)
		stats := a.loop.Step()
		rl.EndTextureMode()
		a.pushTelemetry(float64(stats.Elapsed.Microseconds()) / 1000)
	}

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else {
		// render textures are stored bottom-up
		src := rl.NewRectangle(0, 0, float32(a.target.Texture.Width), -float32(a.target.Texture.Height))
		rl.DrawTextureRec(a.target.Texture, src, rl.NewVector2(0, 0), rl.White)
		if a.ShowHUD {
			a.DrawHUD()
		}
	}

	rl.EndDrawing()
}

func (a *App) pushTelemetry(ms float64) {
	if len(a.Telemetry) >= telemetrySize {
		a.Telemetry = a.Telemetry[1:]
	}
	a.Telemetry = append(a.Telemetry, ms)
}

func (a *App) DrawHUD() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	clock := a.loop.Clock()

	rl.DrawText("fractalfx", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %s", a.opts.Scene), 170, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, w-130, 30, 16, col)

	rl.DrawText(fmt.Sprintf("frame %d  t=%.2f  rot=%.3f", clock.Frame, clock.Time(), clock.Rotation()), 30, 60, 14, ColText)
	rl.DrawText(fmt.Sprintf("%d FPS  %.2fms/frame", rl.GetFPS(), a.frameTime.Value()), 30, h-40, 14, ColTextDim)
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [H] HUD  [ESC] MENU  [Q] QUIT", w-520, h-40, 14, ColTextDim)

	a.DrawTelemetry(30, 90, 200, 40)
}

// DrawTelemetry plots recent frame times as a line strip in the given box.
func (a *App) DrawTelemetry(x, y, width, height int32) {
	if len(a.Telemetry) < 2 {
		return
	}
	hi := 0.0
	for _, v := range a.Telemetry {
		hi = max(hi, v)
	}
	if hi == 0 {
		hi = 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, v := range a.Telemetry {
		px := float32(x) + float32(i)*float32(width)/float32(telemetrySize-1)
		py := float32(y+height) - float32(v/hi)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawRectangleLines(x, y, width, height, ColTextDim)
	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("%.2fms", a.Telemetry[len(a.Telemetry)-1]), x+width+10, y+height-10, 14, ColText)
}

func (a *App) drawMenu() {
	rl.DrawText("fractalfx", 50, 50, 40, ColSelect)
	rl.DrawText("Select Scene", 50, 100, 16, ColTextDim)

	y := int32(160)
	for i, name := range a.Scenes {
		line := fmt.Sprintf("  %-12s %s", name, a.Registry.Describe(name))
		col := ColText
		if i == a.Selected {
			line, col = fmt.Sprintf("> %-12s %s", name, a.Registry.Describe(name)), ColSelect
		}
		rl.DrawText(line, 50, y, 20, col)
		y += 28
	}

	h := int32(rl.GetScreenHeight())
	rl.DrawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 50, h-40, 14, ColTextDim)
}
