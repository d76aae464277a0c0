package dynamo

import (
	"fmt"
	"math"
)

// Point3 is a point in 3D state space. The same type carries derivatives.
type Point3 struct {
	X, Y, Z float64
}

func (p Point3) IsValid() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Point3) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point3) Add(o Point3) Point3 {
	return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p Point3) Sub(o Point3) Point3 {
	return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

func (p Point3) Scale(factor float64) Point3 {
	return Point3{p.X * factor, p.Y * factor, p.Z * factor}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

// Field is a time-independent 3D vector field. Implementations fold the
// integration step scale into the returned derivative, so one unit step
// of an explicit integrator advances the attractor by one tick.
type Field interface {
	Derive(p Point3) Point3
	Name() string
	Params() map[string]float64
}
