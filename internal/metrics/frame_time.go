package metrics

import (
	"time"

	"github.com/san-kum/attractors/internal/render"
)

// FrameTime is the mean wall time per frame in milliseconds, pacing
// included.
type FrameTime struct {
	name    string
	total   time.Duration
	max     time.Duration
	samples int
}

func NewFrameTime() *FrameTime {
	return &FrameTime{name: "frame_ms"}
}

func (f *FrameTime) Name() string { return f.name }

func (f *FrameTime) Observe(s render.FrameStats) {
	f.total += s.Duration
	if s.Duration > f.max {
		f.max = s.Duration
	}
	f.samples++
}

func (f *FrameTime) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return float64(f.total) / float64(f.samples) / float64(time.Millisecond)
}

func (f *FrameTime) Max() time.Duration { return f.max }

// FPS is the achieved frame rate, 0 before any frame.
func (f *FrameTime) FPS() float64 {
	if f.total == 0 {
		return 0
	}
	return float64(f.samples) / f.total.Seconds()
}

func (f *FrameTime) Reset() {
	f.total = 0
	f.max = 0
	f.samples = 0
}
