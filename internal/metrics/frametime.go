package metrics

import (
	"time"

	"github.com/san-kum/fractalfx/internal/scene"
)

// FrameTime is the mean render time per frame in milliseconds. The most
// recent samples are kept for plotting.
type FrameTime struct {
	name    string
	window  int
	samples int
	total   time.Duration
	recent  []float64
}

func NewFrameTime(window int) *FrameTime {
	if window <= 0 {
		window = 120
	}
	return &FrameTime{
		name:   "frame_ms",
		window: window,
		recent: make([]float64, 0, window),
	}
}

func (ft *FrameTime) Name() string { return ft.name }

func (ft *FrameTime) Observe(f scene.FrameStats) {
	ft.total += f.Elapsed
	ft.samples++

	if len(ft.recent) >= ft.window {
		ft.recent = ft.recent[1:]
	}
	ft.recent = append(ft.recent, ms(f.Elapsed))
}

func (ft *FrameTime) Value() float64 {
	if ft.samples == 0 {
		return 0
	}
	return ms(ft.total) / float64(ft.samples)
}

// Recent returns a copy of the last window samples, oldest first.
func (ft *FrameTime) Recent() []float64 {
	return append([]float64(nil), ft.recent...)
}

func (ft *FrameTime) Reset() {
	ft.total = 0
	ft.samples = 0
	ft.recent = ft.recent[:0]
}

// Budget is the fraction of frames rendered within a frame budget.
type Budget struct {
	name    string
	budget  time.Duration
	over    int
	samples int
}

// NewBudget tracks frames against the interval of the given frame rate.
func NewBudget(fps int) *Budget {
	if fps <= 0 {
		fps = 60
	}
	return &Budget{
		name:   "in_budget",
		budget: time.Second / time.Duration(fps),
	}
}

func (b *Budget) Name() string { return b.name }

func (b *Budget) Observe(f scene.FrameStats) {
	b.samples++
	if f.Elapsed > b.budget {
		b.over++
	}
}

func (b *Budget) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.over)/float64(b.samples)
}

func (b *Budget) Reset() {
	b.over = 0
	b.samples = 0
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
