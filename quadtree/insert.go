package quadtree

import (
	"github.com/johnxnguyen/newton/body"
	"github.com/johnxnguyen/newton/vector"
)

// positionEpsilon is the tolerance within which two positions are
// considered coincident for the purposes of leaf-merging.
const positionEpsilon = 1e-9

// minHalfWidth is the half-width below which further subdivision is
// abandoned in favor of merging, preventing infinite recursion when two
// bodies sit at (or arbitrarily close to) the same position.
const minHalfWidth = 1e-12

// maxDepth is a hard backstop on recursion depth, reached only when the
// root box is so large that maxDepth halvings still leave a half-width
// above minHalfWidth.
const maxDepth = 96

// Build constructs a quadtree over bodies. The bounding box is computed
// from the bodies' current positions: the tight AABB, expanded to a
// square and grown by a small margin so no body sits exactly on the
// half-open upper boundary. Build never fails: an empty input yields an
// Empty root over an arbitrary unit box.
func Build(bodies []*body.Body) *Node {
	if len(bodies) == 0 {
		return &Node{box: BoundingBox{HalfWidth: 1}}
	}

	positions := make([]vector.Point, len(bodies))
	for i, b := range bodies {
		positions[i] = b.Position
	}

	root := &Node{box: boundingSquare(positions)}
	for _, b := range bodies {
		insert(root, b, 0)
	}
	return root
}

// insert places b into node's subtree and restores the aggregate
// invariants (total mass, center of mass) on every node along the path.
func insert(node *Node, b *body.Body, depth int) {
	switch node.kind {
	case Empty:
		node.kind = Leaf
		node.members = []*body.Body{b}
		node.totalMass = b.Mass
		node.centerOfMass = b.Position

	case Leaf:
		existing := node.members[0]
		coincident := samePosition(existing.Position, b.Position)
		if coincident || depth >= maxDepth || node.box.HalfWidth <= minHalfWidth {
			node.members = append(node.members, b)
			node.totalMass, node.centerOfMass = aggregate(node.members)
			return
		}

		// Subdivide: reinsert the existing occupant before the new body,
		// matching the construction contract's recommended order.
		node.kind = Internal
		node.children = subdivide(node.box)
		members := node.members
		node.members = nil

		for _, m := range members {
			insert(node.children[quadrant(node.box, m.Position)], m, depth+1)
		}
		insert(node.children[quadrant(node.box, b.Position)], b, depth+1)
		node.totalMass, node.centerOfMass = aggregateChildren(node.children)

	case Internal:
		idx := quadrant(node.box, b.Position)
		insert(node.children[idx], b, depth+1)
		node.totalMass, node.centerOfMass = aggregateChildren(node.children)
	}
}

func samePosition(a, bb vector.Point) bool {
	d, _ := vector.Distance(a, bb)
	return d.Norm2() < positionEpsilon*positionEpsilon
}

// aggregate computes total mass and mass-weighted mean position over a
// set of bodies, used for a (possibly merged) Leaf.
func aggregate(members []*body.Body) (float64, vector.Point) {
	var totalMass float64
	var weighted vector.Point
	for _, m := range members {
		totalMass += m.Mass
		weighted = weighted.Add(m.Position.Scale(m.Mass))
	}
	return totalMass, weighted.Scale(1 / totalMass)
}

// aggregateChildren computes total mass and mass-weighted mean position
// over an Internal node's four children, each of which already carries
// its own subtree's aggregate.
func aggregateChildren(children [4]*Node) (float64, vector.Point) {
	var totalMass float64
	var weighted vector.Point
	for _, c := range children {
		if c.kind == Empty {
			continue
		}
		totalMass += c.totalMass
		weighted = weighted.Add(c.centerOfMass.Scale(c.totalMass))
	}
	if totalMass == 0 {
		return 0, vector.Point{}
	}
	return totalMass, weighted.Scale(1 / totalMass)
}
