package physics

import (
	"math"

	"github.com/san-kum/attractors/internal/dynamo"
)

// Thomas is Thomas' cyclically symmetric attractor.
type Thomas struct{ b, k float64 }

func NewThomas(b, k float64) *Thomas { return &Thomas{b, k} }
func DefaultThomas() *Thomas         { return NewThomas(1.0, 2.0) }
func (t *Thomas) Name() string       { return "thomas" }

func (t *Thomas) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: t.k * (math.Sin(p.Y) - t.b*p.X),
		Y: t.k * (math.Sin(p.Z) - t.b*p.Y),
		Z: t.k * (math.Sin(p.X) - t.b*p.Z),
	}
}
func (t *Thomas) Params() map[string]float64 {
	return map[string]float64{"b": t.b, "k": t.k}
}
