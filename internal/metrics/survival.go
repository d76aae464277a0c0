package metrics

import "github.com/san-kum/attractors/internal/render"

// Survival is the fraction of the initial trajectories still active after
// the last observed frame.
type Survival struct {
	name     string
	initial  int
	survived int
	samples  int
}

func NewSurvival(initial int) *Survival {
	return &Survival{
		name:     "survival",
		initial:  initial,
		survived: initial,
	}
}

func (s *Survival) Name() string {
	return s.name
}

func (s *Survival) Observe(f render.FrameStats) {
	s.samples++
	s.survived = f.Active - f.Evicted
}

func (s *Survival) Survivors() int { return s.survived }

func (s *Survival) Value() float64 {
	if s.initial == 0 {
		return 0
	}
	return float64(s.survived) / float64(s.initial)
}

func (s *Survival) Reset() {
	s.survived = s.initial
	s.samples = 0
}

type Evictions struct {
	name  string
	total int
}

func NewEvictions() *Evictions {
	return &Evictions{name: "evictions"}
}

func (e *Evictions) Name() string { return e.name }

func (e *Evictions) Observe(f render.FrameStats) { e.total += f.Evicted }

func (e *Evictions) Value() float64 { return float64(e.total) }

func (e *Evictions) Reset() { e.total = 0 }
