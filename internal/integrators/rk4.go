package integrators

import "github.com/san-kum/attractors/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper with unit step.
// The render loop always integrates with Euler; RK4 exists for headless
// comparisons.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f dynamo.Field, p dynamo.Point3) dynamo.Point3 {
	k1 := f.Derive(p)
	k2 := f.Derive(p.Add(k1.Scale(0.5)))
	k3 := f.Derive(p.Add(k2.Scale(0.5)))
	k4 := f.Derive(p.Add(k3))

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return p.Add(sum.Scale(1.0 / 6.0))
}

