// Package physics provides the strange attractor vector fields.
//
// Each model implements [dynamo.Field] with its parameters and step
// scale constant k fixed at construction:
//
//   - [Lorenz]: butterfly attractor
//   - [Rossler]: single-band spiral chaos
//   - [Thomas]: cyclically symmetric attractor
//   - [Finance]: chaotic finance system
//   - [NoseHoover]: Nosé–Hoover thermostat
//   - [WangSun]: four-wing attractor
//   - [Halvorsen]: cyclically symmetric three-lobe attractor
//
// Every derivative is multiplied by k, so a single Euler step of size one
// advances the trajectory by one render tick.
//
//	field := physics.DefaultHalvorsen()
//	next := p.Add(field.Derive(p))
package physics
