// Package dynamo provides the core primitives shared by every attractor.
//
// The package defines the fundamental types for integrating 3D vector
// fields and the sentinel errors used across the module:
//
//   - [Point3]: a point (or derivative) in 3D state space
//   - [Field]: a pure vector field dX/dt = f(X)
//   - [ParallelFor]: bounded fan-out over independent index ranges
//
// # Example
//
//	field := physics.DefaultLorenz()
//	p := dynamo.Point3{X: 1, Y: 1, Z: 1}
//	next := p.Add(field.Derive(p))
//
// # Thread Safety
//
// Fields are stateless and safe for concurrent use. Point3 is a value
// type and is never shared by reference.
package dynamo
