package physics

import "github.com/san-kum/attractors/internal/dynamo"

type Lorenz struct{ sigma, rho, beta, k float64 }

func NewLorenz(sigma, rho, beta, k float64) *Lorenz { return &Lorenz{sigma, rho, beta, k} }
func DefaultLorenz() *Lorenz                        { return NewLorenz(10.0, 28.0, 8.0/3.0, 0.009) }
func (l *Lorenz) Name() string                      { return "lorenz" }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: l.k * l.sigma * (p.Y - p.X),
		Y: l.k * (p.X*(l.rho-p.Z) - p.Y),
		Z: l.k * (p.X*p.Y - l.beta*p.Z),
	}
}
func (l *Lorenz) Params() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta, "k": l.k}
}
