package physics

import "github.com/san-kum/attractors/internal/dynamo"

// Finance models interest rate (x), investment demand (y) and price
// index (z) of a simple chaotic economy.
type Finance struct{ a, b, c, k float64 }

func NewFinance(a, b, c, k float64) *Finance { return &Finance{a, b, c, k} }
func DefaultFinance() *Finance               { return NewFinance(0.001, 0.2, 1.1, 0.025) }
func (f *Finance) Name() string              { return "finance" }

// Derive calculates the finance attractor derivatives. b must be non-zero.
func (f *Finance) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: f.k * ((1/f.b-f.a)*p.X + p.Z + p.X*p.Y),
		Y: f.k * (-f.b*p.Y - p.X*p.X),
		Z: f.k * (-p.X - f.c*p.Z),
	}
}
func (f *Finance) Params() map[string]float64 {
	return map[string]float64{"a": f.a, "b": f.b, "c": f.c, "k": f.k}
}
