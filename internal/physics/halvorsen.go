package physics

import "github.com/san-kum/attractors/internal/dynamo"

type Halvorsen struct{ a, k float64 }

func NewHalvorsen(a, k float64) *Halvorsen { return &Halvorsen{a, k} }
func DefaultHalvorsen() *Halvorsen         { return NewHalvorsen(1.4, 0.005) }
func (h *Halvorsen) Name() string          { return "halvorsen" }

// Derive calculates the Halvorsen attractor derivatives.
func (h *Halvorsen) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: h.k * (-h.a*p.X - 4*p.Y - 4*p.Z - p.Y*p.Y),
		Y: h.k * (-h.a*p.Y - 4*p.Z - 4*p.X - p.Z*p.Z),
		Z: h.k * (-h.a*p.Z - 4*p.X - 4*p.Y - p.X*p.X),
	}
}
func (h *Halvorsen) Params() map[string]float64 {
	return map[string]float64{"a": h.a, "k": h.k}
}
