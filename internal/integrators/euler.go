package integrators

import "github.com/san-kum/attractors/internal/dynamo"

// Stepper advances a point by one unit step of a field.
type Stepper interface {
	Step(f dynamo.Field, p dynamo.Point3) dynamo.Point3
}

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

// Step adds the derivative to p componentwise. The step size is one; the
// field's scale constant sets the effective dt.
func (e *Euler) Step(f dynamo.Field, p dynamo.Point3) dynamo.Point3 {
	return p.Add(f.Derive(p))
}
