// Package integrator advances body velocity and position from an
// already-computed per-step force.
package integrator

import "github.com/johnxnguyen/newton/body"

// DefaultDt is the time step used when a caller does not override it,
// matching the reference behavior of the system this was derived from:
// the step is implicit and unity.
const DefaultDt = 1.0

// Step applies semi-implicit (symplectic) Euler to b using its current
// Force accumulator:
//
//	v ← v + force/mass * dt
//	p ← p + v * dt
//
// The velocity update happens first and uses the new velocity for the
// position update, which is what makes the method symplectic. Callers
// are responsible for zeroing b.Force afterward (Field does this for
// each body right after integrating it, once every force for the step
// has been computed).
func Step(b *body.Body, dt float64) {
	b.Velocity = b.Velocity.Add(b.Force.Scale(dt / b.Mass))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}
