package scene

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fractalfx/internal/effects"
	"github.com/san-kum/fractalfx/internal/surface"
)

type frameCounter struct {
	frames int
}

func (f *frameCounter) Name() string      { return "frames" }
func (f *frameCounter) Observe(FrameStats) { f.frames++ }
func (f *frameCounter) Value() float64     { return float64(f.frames) }
func (f *frameCounter) Reset()             { f.frames = 0 }

type failingSurface struct {
	*surface.Recorder
	fail bool
}

func (f *failingSurface) Err() error {
	if f.fail {
		f.fail = false
		return errors.New("backend failure")
	}
	return nil
}

func TestLoopRun(t *testing.T) {
	rec := surface.NewRecorder(400, 400)
	loop := New(rec, PatternLayer{})
	m := &frameCounter{}
	loop.AddMetric(m)

	result, err := loop.Run(context.Background(), Config{Frames: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", result.Frames)
	}
	if result.Metrics["frames"] != 10 {
		t.Errorf("expected metric 10, got %v", result.Metrics["frames"])
	}
	if loop.Clock().Frame != 10 {
		t.Errorf("clock at frame %d, want 10", loop.Clock().Frame)
	}

	// clear + 425 circles per frame
	if got := rec.Count(surface.OpClear); got != 10 {
		t.Errorf("expected 10 clears, got %d", got)
	}
	if got := rec.Count(surface.OpCircle); got != 4250 {
		t.Errorf("expected 4250 circles, got %d", got)
	}
}

func TestLoopRotationAccumulates(t *testing.T) {
	rec := surface.NewRecorder(400, 400)
	loop := New(rec, PatternLayer{})

	const n = 200
	for i := 0; i < n; i++ {
		loop.Step()
	}

	want := math.Mod(n*RotationStep, 2*math.Pi)
	if got := loop.Clock().Rotation(); math.Abs(got-want) > 1e-12 {
		t.Errorf("rotation after %d frames = %v, want %v", n, got, want)
	}

	// the next frame is drawn with the accumulated rotation
	rec.Reset()
	loop.Step()
	child := rec.Filter(surface.OpCircle)[1]
	angle := math.Atan2(child.Y1-200, child.X1-200)
	expected := math.Atan2(-1, -1) + want
	if d := math.Remainder(angle-expected, 2*math.Pi); math.Abs(d) > 1e-6 {
		t.Errorf("first child at angle %v, want %v", angle, expected)
	}
}

func TestLoopStop(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	loop := New(rec, ClearLayer{})
	loop.AddObserver(ObserverFunc(func(f FrameStats, s surface.Surface) {
		if f.Frame == 4 {
			loop.Stop()
		}
	}))

	result, err := loop.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Frames != 5 {
		t.Errorf("expected 5 frames before stop, got %d", result.Frames)
	}
	if !loop.Stopped() {
		t.Error("loop should report stopped")
	}

	if _, err := loop.Run(context.Background(), Config{Frames: 1}); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}

	loop.Reset()
	if loop.Stopped() || loop.Clock().Frame != 0 {
		t.Error("Reset should clear the stop flag and rewind the clock")
	}
}

func TestLoopStopBeforeRun(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	loop := New(rec, ClearLayer{})
	loop.Stop()

	_, err := loop.Run(context.Background(), Config{Frames: 3})
	if !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
	if len(rec.Ops) != 0 {
		t.Errorf("stopped loop drew %d ops", len(rec.Ops))
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := New(surface.NewRecorder(100, 100), ClearLayer{})
	result, err := loop.Run(ctx, Config{Frames: 100})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result.Frames != 0 {
		t.Errorf("expected no frames, got %d", result.Frames)
	}
}

func TestLoopPaced(t *testing.T) {
	loop := New(surface.NewRecorder(100, 100), ClearLayer{})
	result, err := loop.Run(context.Background(), Config{Frames: 3, FPS: 200})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", result.Frames)
	}
}

func TestLoopInvalidConfig(t *testing.T) {
	loop := New(surface.NewRecorder(10, 10), ClearLayer{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative frames", Config{Frames: -1}},
		{"negative fps", Config{Frames: 1, FPS: -30}},
		{"fps past nanosecond interval", Config{Frames: 1, FPS: 2_000_000_000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loop.Run(context.Background(), tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoopResize(t *testing.T) {
	rec := surface.NewRecorder(300, 200)
	loop := New(rec)

	tests := []struct {
		w, h   int
		wantOK bool
		wantW  int
		wantH  int
	}{
		{640, 480, true, 640, 480},
		{0, 480, false, 640, 480},
		{640, -1, false, 640, 480},
		{1, 1, true, 1, 1},
	}

	for _, tt := range tests {
		err := loop.Resize(tt.w, tt.h)
		if (err == nil) != tt.wantOK {
			t.Errorf("Resize(%d, %d) err = %v", tt.w, tt.h, err)
		}
		if w, h := rec.Size(); w != tt.wantW || h != tt.wantH {
			t.Errorf("after Resize(%d, %d) size = %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestLoopPointerRipples(t *testing.T) {
	rec := surface.NewRecorder(400, 400)
	ripples := NewRippleLayer(0)
	loop := New(rec, PatternLayer{}, ripples)

	loop.PointerMove(10, 20)
	loop.PointerMove(30, 40)

	stats := loop.Step()
	if stats.Live != 2 {
		t.Errorf("expected 2 live ripples, got %d", stats.Live)
	}
	// clear + 425 pattern circles + 2 ripple rings
	if stats.Ops != 428 {
		t.Errorf("expected 428 ops, got %d", stats.Ops)
	}

	rings := rec.Filter(surface.OpCircle)
	last := rings[len(rings)-1]
	if last.X1 != 30 || last.Y1 != 40 || last.R != 0 {
		t.Errorf("ripple drawn at (%v, %v) r=%v", last.X1, last.Y1, last.R)
	}

	steps := 100 / effects.RippleFade
	for i := 1; i < steps; i++ {
		loop.Step()
	}
	if ripples.Live() != 0 {
		t.Errorf("ripples should be gone after %d frames, %d left", steps, ripples.Live())
	}
}

func TestLoopFrameErrors(t *testing.T) {
	s := &failingSurface{Recorder: surface.NewRecorder(10, 10), fail: true}
	loop := New(s, ClearLayer{})

	result, err := loop.Run(context.Background(), Config{Frames: 3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 frame error, got %d", len(result.Errors))
	}

	var fe *FrameError
	if !errors.As(result.Errors[0], &fe) || fe.Frame != 0 {
		t.Errorf("unexpected frame error: %v", result.Errors[0])
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	want := []string{"background", "interactive", "page", "particles", "ripples"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
		if r.Describe(want[i]) == "" {
			t.Errorf("scene %s has no description", want[i])
		}
	}

	if _, err := r.Build("mandelbrot", 10, 10, 0); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}

	layers, err := r.Build("page", 320, 240, 1)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(layers) != 3 || layers[0].Name() != "background" || layers[2].Name() != "ripples" {
		t.Errorf("unexpected page layers: %v", New(nil, layers...).layerNames())
	}
}

func TestSceneFrames(t *testing.T) {
	tree := (1 << 8) - 1

	tests := []struct {
		scene string
		ops   int
	}{
		{"background", 1 + 50 + tree},
		{"interactive", 1 + 425},
		{"particles", 1 + effects.ParticleCount},
		{"ripples", 1},
		{"page", 1 + 50 + tree + effects.ParticleCount},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.scene, func(t *testing.T) {
			layers, err := r.Build(tt.scene, 320, 240, 5)
			if err != nil {
				t.Fatal(err)
			}
			stats := New(surface.NewRecorder(320, 240), layers...).Step()
			if stats.Ops != tt.ops {
				t.Errorf("first frame drew %d ops, want %d", stats.Ops, tt.ops)
			}
		})
	}
}

func TestParticleLayerReset(t *testing.T) {
	p := NewParticleLayer(5, 100, 100, 9)
	first := append([]effects.Particle(nil), p.Field().Particles...)

	loop := New(surface.NewRecorder(100, 100), p)
	loop.Step()
	loop.Step()
	loop.Reset()

	for i, got := range p.Field().Particles {
		if got != first[i] {
			t.Errorf("particle %d = %+v after reset, want %+v", i, got, first[i])
		}
	}
}

func TestEnsemble(t *testing.T) {
	e := NewEnsemble(NewRegistry(), "background", 4, 10)
	variants, err := e.Run(context.Background(), Config{Frames: 2}, func() surface.Surface {
		return surface.NewRecorder(64, 48)
	})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	if len(variants) != 4 {
		t.Fatalf("expected 4 variants, got %d", len(variants))
	}
	for i, v := range variants {
		if v.Seed != int64(10+i) {
			t.Errorf("variant %d seed = %d", i, v.Seed)
		}
		if v.Result.Frames != 2 {
			t.Errorf("variant %d drew %d frames", i, v.Result.Frames)
		}
	}

	if _, err := NewEnsemble(NewRegistry(), "nope", 2, 0).Run(context.Background(), Config{Frames: 1}, func() surface.Surface {
		return surface.NewRecorder(1, 1)
	}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}
