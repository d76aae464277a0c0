package physics

import "github.com/san-kum/attractors/internal/dynamo"

type Rossler struct{ a, b, c, k float64 }

func NewRossler(a, b, c, k float64) *Rossler { return &Rossler{a, b, c, k} }
func DefaultRossler() *Rossler               { return NewRossler(0.2, 0.2, 5.7, 0.075) }
func (r *Rossler) Name() string              { return "rossler" }

// Derive calculates the Rossler attractor derivatives.
func (r *Rossler) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: r.k * (-p.Y - p.Z),
		Y: r.k * (p.X + r.a*p.Y),
		Z: r.k * (r.b + p.Z*(p.X-r.c)),
	}
}
func (r *Rossler) Params() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c, "k": r.k}
}
