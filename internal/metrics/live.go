package metrics

import "github.com/san-kum/fractalfx/internal/scene"

// LiveRipples is the peak number of live transient effects seen in a frame.
type LiveRipples struct {
	name string
	peak int
}

func NewLiveRipples() *LiveRipples {
	return &LiveRipples{name: "live_ripples"}
}

func (l *LiveRipples) Name() string { return l.name }

func (l *LiveRipples) Observe(f scene.FrameStats) {
	if f.Live > l.peak {
		l.peak = f.Live
	}
}

func (l *LiveRipples) Value() float64 { return float64(l.peak) }

func (l *LiveRipples) Reset() { l.peak = 0 }

// Defaults returns the standard metric set for a run at fps.
func Defaults(fps int) []scene.Metric {
	return []scene.Metric{
		NewDrawOps(),
		NewFrameTime(0),
		NewBudget(fps),
		NewLiveRipples(),
	}
}
