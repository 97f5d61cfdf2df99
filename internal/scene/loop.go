package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/san-kum/fractalfx/internal/surface"
)

type Loop struct {
	surface   surface.Surface
	counter   *surface.Counter
	layers    []Layer
	clock     Clock
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
	stopped   atomic.Bool
}

func New(s surface.Surface, layers ...Layer) *Loop {
	return &Loop{
		surface:   s,
		counter:   surface.NewCounter(s),
		layers:    layers,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    slog.Default(),
	}
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	l.logger = logger
}

func (l *Loop) Surface() surface.Surface { return l.surface }
func (l *Loop) Clock() Clock             { return l.clock }
func (l *Loop) Layers() []Layer          { return l.layers }

// Stop ends Run after the frame in progress. Safe to call from any goroutine.
func (l *Loop) Stop()         { l.stopped.Store(true) }
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Step renders exactly one frame and advances the clock.
func (l *Loop) Step() FrameStats {
	start := time.Now()
	for _, layer := range l.layers {
		layer.Draw(l.counter, l.clock)
	}

	stats := FrameStats{
		Frame:   l.clock.Frame,
		Ops:     l.counter.Take(),
		Live:    l.live(),
		Elapsed: time.Since(start),
	}

	for _, m := range l.metrics {
		m.Observe(stats)
	}
	for _, obs := range l.observers {
		obs.OnFrame(stats, l.surface)
	}

	l.clock.Frame++
	return stats
}

// Run renders frames until cfg.Frames have been drawn, Stop is called or
// ctx is cancelled. With cfg.FPS > 0 frames are paced by a ticker.
func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := l.validateConfig(cfg); err != nil {
		return nil, err
	}
	if l.Stopped() {
		return nil, ErrStopped
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	for _, m := range l.metrics {
		m.Reset()
	}

	var tick <-chan time.Time
	if cfg.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	l.logger.Debug("run started", "frames", cfg.Frames, "fps", cfg.FPS, "layers", l.layerNames())
	start := time.Now()

	var runErr error
	for cfg.Frames == 0 || result.Frames < cfg.Frames {
		if l.Stopped() {
			break
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				runErr = ctx.Err()
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				runErr = ctx.Err()
			default:
			}
		}
		if runErr != nil {
			break
		}

		stats := l.Step()
		result.Frames++

		if err := l.surfaceErr(); err != nil {
			ferr := &FrameError{Frame: stats.Frame, Wrapped: err}
			result.Errors = append(result.Errors, ferr)
			l.logger.Warn("frame draw failed", "frame", stats.Frame, "err", err)
		}
	}

	result.Duration = time.Since(start)
	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	l.logger.Debug("run finished", "frames", result.Frames, "duration", result.Duration)

	return result, runErr
}

func (l *Loop) validateConfig(cfg Config) error {
	if cfg.Frames < 0 {
		return fmt.Errorf("%w: frames must be non-negative, got %d", ErrInvalidConfig, cfg.Frames)
	}
	if cfg.FPS < 0 {
		return fmt.Errorf("%w: fps must be non-negative, got %d", ErrInvalidConfig, cfg.FPS)
	}
	if cfg.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be at most %d, got %d", ErrInvalidConfig, MaxFPS, cfg.FPS)
	}
	return nil
}

// Resize forwards a viewport resize to the surface. Non-positive sizes are
// ignored and the surface keeps its dimensions.
func (l *Loop) Resize(w, h int) error {
	if err := l.surface.Resize(w, h); err != nil {
		if errors.Is(err, surface.ErrInvalidSize) {
			l.logger.Warn("resize ignored", "width", w, "height", h)
		}
		return err
	}
	return nil
}

// PointerMove forwards surface-relative pointer motion to interested layers.
func (l *Loop) PointerMove(x, y float64) {
	for _, layer := range l.layers {
		if p, ok := layer.(PointerHandler); ok {
			p.PointerMove(x, y)
		}
	}
}

// Reset rewinds the clock, resets stateful layers and clears the stop flag.
func (l *Loop) Reset() {
	l.clock = Clock{}
	for _, layer := range l.layers {
		if r, ok := layer.(Resetter); ok {
			r.Reset()
		}
	}
	l.stopped.Store(false)
}

func (l *Loop) live() int {
	n := 0
	for _, layer := range l.layers {
		if c, ok := layer.(Counted); ok {
			n += c.Live()
		}
	}
	return n
}

func (l *Loop) surfaceErr() error {
	if e, ok := l.surface.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

func (l *Loop) layerNames() []string {
	names := make([]string, len(l.layers))
	for i, layer := range l.layers {
		names[i] = layer.Name()
	}
	return names
}
