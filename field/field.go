// Package field owns the body set and simulation parameters, and
// orchestrates one step of the simulation: build a quadtree over the
// current positions, walk it once per body to accumulate forces,
// integrate, and discard the tree.
package field

import (
	"fmt"

	"github.com/johnxnguyen/newton/body"
	"github.com/johnxnguyen/newton/forcefield"
	"github.com/johnxnguyen/newton/integrator"
	"github.com/johnxnguyen/newton/quadtree"
	"github.com/johnxnguyen/newton/vector"
)

// Params holds the simulation constants: the gravitational constant G,
// the Barnes–Hut acceptance parameter Theta, the softening floor
// MinDist, and the culling ceiling MaxDist. MaxDist == 0 means
// unbounded (the spec's default of +infinity).
type Params struct {
	G       float64
	Theta   float64
	MinDist float64
	MaxDist float64
	Dt      float64
}

// DefaultParams matches spec.md §6: G=1, theta=0.5, min_dist=1,
// max_dist=unbounded, and the reference implementation's unit time
// step.
func DefaultParams() Params {
	return Params{G: 1, Theta: 0.5, MinDist: 1, MaxDist: 0, Dt: integrator.DefaultDt}
}

// Field is the top-level simulation object. It exclusively owns its
// bodies; the quadtree built during Step holds non-owning references
// that never outlive the call.
type Field struct {
	params Params

	bodies map[uint64]*body.Body
	order  []uint64 // insertion order, paired with the map per the
	// determinism guidance in spec.md §9: a map alone does not provide
	// a stable iteration order.
}

// New constructs an empty Field with the given parameters.
func New(params Params) *Field {
	if params.Dt == 0 {
		params.Dt = integrator.DefaultDt
	}
	return &Field{
		params: params,
		bodies: make(map[uint64]*body.Body),
	}
}

// AddBody inserts a new body with the given id, mass, position and
// velocity. It rejects a duplicate id or a non-positive mass; in either
// case the Field is left unchanged.
func (f *Field) AddBody(id uint64, mass float64, position, velocity vector.Point) error {
	if _, exists := f.bodies[id]; exists {
		return fmt.Errorf("field: add body %d: %w", id, ErrDuplicateBodyID)
	}
	if mass <= 0 {
		return fmt.Errorf("field: add body %d: %w", id, ErrNonPositiveMass)
	}

	f.bodies[id] = body.New(id, mass, position, velocity)
	f.order = append(f.order, id)
	return nil
}

// Len returns the number of bodies currently in the Field.
func (f *Field) Len() int { return len(f.order) }

// BodyPosition returns the current position of the body with the given
// id, or the origin if the id is unknown. Per spec.md §4.4/§9, this
// sentinel is ambiguous for a body genuinely at the origin; callers
// distinguish "absent" from "at origin" by tracking known ids
// out-of-band, not from this return value alone.
func (f *Field) BodyPosition(id uint64) vector.Point {
	b, ok := f.bodies[id]
	if !ok {
		return vector.Zero
	}
	return b.Position
}

// Positions returns the current position of every body, in insertion
// order, for the output sink.
func (f *Field) Positions() []vector.Point {
	out := make([]vector.Point, len(f.order))
	for i, id := range f.order {
		out[i] = f.bodies[id].Position
	}
	return out
}

// Step advances the simulation by one time step:
//
//  1. build a fresh quadtree over the current positions,
//  2. for each body (in insertion order), walk the tree once to
//     compute its net force,
//  3. integrate every body once all forces have been computed,
//  4. discard the tree.
//
// Phases 2 and 3 are kept separate so every body's force is computed
// against the same fixed configuration; integrating a body mid-walk
// would let later bodies see already-updated positions.
func (f *Field) Step() {
	if len(f.order) == 0 {
		return
	}

	ordered := make([]*body.Body, len(f.order))
	for i, id := range f.order {
		ordered[i] = f.bodies[id]
	}

	tree := quadtree.Build(ordered)
	fp := forcefield.Params{
		G:       f.params.G,
		Theta:   f.params.Theta,
		MinDist: f.params.MinDist,
		MaxDist: f.params.MaxDist,
	}

	for _, b := range ordered {
		b.Force = forcefield.Net(tree, b, fp)
	}
	for _, b := range ordered {
		integrator.Step(b, f.params.Dt)
		b.ResetForce()
	}
}
