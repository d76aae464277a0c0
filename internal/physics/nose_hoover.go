package physics

import "github.com/san-kum/attractors/internal/dynamo"

type NoseHoover struct{ a, k float64 }

func NewNoseHoover(a, k float64) *NoseHoover { return &NoseHoover{a, k} }
func DefaultNoseHoover() *NoseHoover         { return NewNoseHoover(1.5, 0.1) }
func (n *NoseHoover) Name() string           { return "nose_hoover" }

// Derive calculates the Nosé–Hoover thermostat derivatives.
func (n *NoseHoover) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: n.k * p.Y,
		Y: n.k * (-p.X + p.Y*p.Z),
		Z: n.k * (n.a - p.Y*p.Y),
	}
}
func (n *NoseHoover) Params() map[string]float64 {
	return map[string]float64{"a": n.a, "k": n.k}
}
