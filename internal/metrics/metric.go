package metrics

import "github.com/san-kum/attractors/internal/render"

// Metric accumulates one scalar over the frames of a render loop.
type Metric interface {
	render.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns the metrics logged at the end of every scenario.
func Defaults(trajectories int) []Metric {
	return []Metric{
		NewSurvival(trajectories),
		NewEvictions(),
		NewFrameTime(),
	}
}

// Observers adapts ms for render.Options.
func Observers(ms []Metric) []render.Observer {
	out := make([]render.Observer, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

// Attrs flattens ms into slog key/value pairs.
func Attrs(ms []Metric) []any {
	out := make([]any, 0, 2*len(ms))
	for _, m := range ms {
		out = append(out, m.Name(), m.Value())
	}
	return out
}
