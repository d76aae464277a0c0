package physics

import "github.com/san-kum/attractors/internal/dynamo"

type WangSun struct{ a, b, c, d, e, f, k float64 }

func NewWangSun(a, b, c, d, e, f, k float64) *WangSun { return &WangSun{a, b, c, d, e, f, k} }
func DefaultWangSun() *WangSun                        { return NewWangSun(0.2, -0.01, 1, -0.4, -1, -1, 0.0185) }
func (w *WangSun) Name() string                       { return "wang_sun" }

// Derive calculates the Wang–Sun four-wing attractor derivatives.
func (w *WangSun) Derive(p dynamo.Point3) dynamo.Point3 {
	return dynamo.Point3{
		X: w.k * (w.a*p.X + w.c*p.Y*p.Z),
		Y: w.k * (w.b*p.X + w.d*p.Y - p.X*p.Z),
		Z: w.k * (w.e*p.Z + w.f*p.X*p.Y),
	}
}
func (w *WangSun) Params() map[string]float64 {
	return map[string]float64{"a": w.a, "b": w.b, "c": w.c, "d": w.d, "e": w.e, "f": w.f, "k": w.k}
}
