// Package forcefield implements the Barnes–Hut traversal that
// approximates the net gravitational force on a body.
package forcefield

import (
	"github.com/johnxnguyen/newton/body"
	"github.com/johnxnguyen/newton/quadtree"
	"github.com/johnxnguyen/newton/vector"
)

// Params bundles the physical constants the walk needs: the
// gravitational constant, the Barnes–Hut acceptance parameter, and the
// softening floor / cutoff ceiling on separation distance.
type Params struct {
	G       float64
	Theta   float64
	MinDist float64
	MaxDist float64
}

// Net returns the approximate net gravitational force on b, walking
// tree under the multipole-acceptance criterion governed by p.Theta.
// Children are visited NW, NE, SW, SE (quadtree's canonical order), so
// the summation order — and therefore the floating-point result — is
// deterministic for a fixed tree.
func Net(tree *quadtree.Node, b *body.Body, p Params) vector.Point {
	return walk(tree, b, p)
}

func walk(node *quadtree.Node, b *body.Body, p Params) vector.Point {
	switch node.Kind() {
	case quadtree.Empty:
		return vector.Point{}

	case quadtree.Leaf:
		return leafForce(node, b, p)

	case quadtree.Internal:
		d := node.CenterOfMass().Sub(b.Position)
		dist := d.Norm()
		// A node whose box contains b can never be soundly approximated
		// as a single pseudo-body: b may be one of its own members, and
		// accepting it would have b attract itself. Geometrically this
		// can only arise for theta > 1/sqrt(2) anyway (the center of
		// mass is within the box, so s/d >= 1/sqrt(2) whenever b is also
		// in the box), but the explicit check keeps correctness
		// independent of the caller's theta choice.
		if dist > 0 && !node.Box().Contains(b.Position) && node.Box().Side()/dist < p.Theta {
			return pairwiseForce(b.Mass, node.TotalMass(), d, dist, p)
		}

		var total vector.Point
		for q := 0; q < 4; q++ {
			total = total.Add(walk(node.Child(q), b, p))
		}
		return total
	}

	return vector.Point{}
}

// leafForce handles a Leaf node, which ordinarily holds a single other
// body but may (rarely) hold several bodies merged at a coincident
// position. b's own contribution is always excluded.
func leafForce(node *quadtree.Node, b *body.Body, p Params) vector.Point {
	if !node.Contains(b) {
		d := node.CenterOfMass().Sub(b.Position)
		return pairwiseForce(b.Mass, node.TotalMass(), d, d.Norm(), p)
	}

	members := node.Members()
	if len(members) == 1 {
		// The leaf's sole occupant is b itself: self-interaction is
		// skipped.
		return vector.Point{}
	}

	// b shares this leaf with one or more merged bodies; exclude b's
	// own mass from the aggregate before computing the pairwise force.
	effectiveMass := node.TotalMass() - b.Mass
	if effectiveMass <= 0 {
		return vector.Point{}
	}
	weighted := node.CenterOfMass().Scale(node.TotalMass()).Sub(b.Position.Scale(b.Mass))
	effectiveCenter := weighted.Scale(1 / effectiveMass)

	d := effectiveCenter.Sub(b.Position)
	return pairwiseForce(b.Mass, effectiveMass, d, d.Norm(), p)
}

// pairwiseForce computes the Newtonian force F = G*m1*m2/r^2 along the
// unit vector from b toward the source at displacement d, distance
// dist. The squared distance used in the divisor is clamped to
// max(r^2, MinDist^2); separations beyond MaxDist contribute nothing.
func pairwiseForce(m1, m2 float64, d vector.Point, dist float64, p Params) vector.Point {
	if dist == 0 {
		return vector.Point{}
	}
	if p.MaxDist > 0 && dist > p.MaxDist {
		return vector.Point{}
	}

	r2 := dist * dist
	if floor := p.MinDist * p.MinDist; r2 < floor {
		r2 = floor
	}

	f := p.G * m1 * m2 / r2
	return d.Scale(f / dist)
}

// DirectSum computes the exact pairwise force on b from every other
// body in bodies: the θ=0 reference used to validate the Barnes–Hut
// approximation (spec.md §8, invariant 5). Net does not call it: a
// zero Theta still walks the tree, reaching every leaf.
func DirectSum(bodies []*body.Body, b *body.Body, p Params) vector.Point {
	var total vector.Point
	for _, other := range bodies {
		if other == b {
			continue
		}
		d := other.Position.Sub(b.Position)
		total = total.Add(pairwiseForce(b.Mass, other.Mass, d, d.Norm(), p))
	}
	return total
}
