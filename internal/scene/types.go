package scene

import (
	"math"
	"time"

	"github.com/san-kum/fractalfx/internal/surface"
)

const (
	TimeStep     = 0.01  // animation time per frame
	RotationStep = 0.005 // pattern rotation per frame, radians

	// MaxFPS keeps the frame interval at one nanosecond or more.
	MaxFPS = int(time.Second)
)

// Clock is the animation clock. Time and rotation are derived from the
// frame count, so they advance by exactly one increment per frame.
type Clock struct {
	Frame int
}

// Time is advanced before a frame is drawn, so frame 0 renders at TimeStep.
// Rotation is advanced after, so frame 0 renders unrotated.
func (c Clock) Time() float64 { return float64(c.Frame+1) * TimeStep }

// Rotation is the accumulated pattern rotation, wrapped to [0, 2π).
func (c Clock) Rotation() float64 {
	return math.Mod(float64(c.Frame)*RotationStep, 2*math.Pi)
}

type Layer interface {
	Name() string
	Draw(s surface.Surface, c Clock)
}

// PointerHandler is implemented by layers that react to pointer motion.
// Coordinates are surface-relative.
type PointerHandler interface {
	PointerMove(x, y float64)
}

// Resetter is implemented by layers with state that survives between frames.
type Resetter interface {
	Reset()
}

// Counted is implemented by layers that track live transient effects.
type Counted interface {
	Live() int
}

// FrameStats describes one rendered frame.
type FrameStats struct {
	Frame   int
	Ops     int
	Live    int
	Elapsed time.Duration
}

type Metric interface {
	Name() string
	Observe(f FrameStats)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f FrameStats, s surface.Surface)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f FrameStats, s surface.Surface)

func (fn ObserverFunc) OnFrame(f FrameStats, s surface.Surface) { fn(f, s) }

// Config controls Run. Frames == 0 runs until Stop or cancellation;
// FPS == 0 renders frames back to back.
type Config struct {
	Frames int
	FPS    int
}

func DefaultConfig() Config {
	return Config{
		Frames: 120,
		FPS:    60,
	}
}

type Result struct {
	Frames   int
	Duration time.Duration
	Metrics  map[string]float64
	Errors   []error
}
