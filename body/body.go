// Package body defines the point-mass record the rest of the simulation
// core operates on.
package body

import "github.com/johnxnguyen/newton/vector"

// Body is a point mass with a caller-assigned id. Force is a transient
// per-step accumulator: it is zero outside a Field.Step call.
//
// Invariant: Mass > 0 for the lifetime of the Body. The core never
// destroys a Body during a simulation.
type Body struct {
	ID       uint64
	Mass     float64
	Position vector.Point
	Velocity vector.Point
	Force    vector.Point
}

// New constructs a Body with a zeroed force accumulator.
func New(id uint64, mass float64, position, velocity vector.Point) *Body {
	return &Body{
		ID:       id,
		Mass:     mass,
		Position: position,
		Velocity: velocity,
	}
}

// ResetForce zeroes the force accumulator, called once per step after
// the integrator has consumed it.
func (b *Body) ResetForce() {
	b.Force = vector.Point{}
}

// AddForce accumulates f into the body's per-step force total.
func (b *Body) AddForce(f vector.Point) {
	b.Force = b.Force.Add(f)
}
