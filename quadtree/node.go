package quadtree

import (
	"github.com/johnxnguyen/newton/body"
	"github.com/johnxnguyen/newton/vector"
)

// Kind tags a Node's variant.
type Kind int

const (
	// Empty carries only a bounding box and contributes nothing to any
	// force walk.
	Empty Kind = iota
	// Leaf carries one body, or (in the rare coincident-position /
	// max-depth degeneracy) more than one merged into a single
	// aggregate; see insert.go.
	Leaf
	// Internal carries four children plus the aggregate mass and
	// center of mass of its subtree.
	Internal
)

// Quadrant indices, fixed NW, NE, SW, SE traversal order. Both
// construction and the force walk rely on this order for deterministic,
// bitwise-reproducible summation.
const (
	quadNW = iota
	quadNE
	quadSW
	quadSE
)

// Node is a tagged-variant quadtree node. Empty/Leaf/Internal is
// modeled as a single struct with a Kind tag rather than separate types,
// since Go has no built-in sum type; fields irrelevant to the current
// Kind are left zero.
type Node struct {
	kind Kind
	box  BoundingBox

	// members holds the Leaf's contents: exactly one body.Body in the
	// common case, more than one only when two or more bodies occupy
	// positions too close to separate by further subdivision.
	members []*body.Body

	children [4]*Node

	totalMass    float64
	centerOfMass vector.Point
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Box returns the node's bounding box.
func (n *Node) Box() BoundingBox { return n.box }

// TotalMass returns the aggregate mass of the node's subtree. Zero for
// an Empty node.
func (n *Node) TotalMass() float64 { return n.totalMass }

// CenterOfMass returns the mass-weighted mean position of the node's
// subtree. Meaningless (zero value) for an Empty node.
func (n *Node) CenterOfMass() vector.Point { return n.centerOfMass }

// Members returns the bodies held directly by a Leaf node. Empty for
// Empty and Internal nodes.
func (n *Node) Members() []*body.Body { return n.members }

// Child returns the node's child in the given quadrant (quadNW etc).
// Nil for Empty and Leaf nodes. An Internal node always has all four
// children; a quadrant holding no body is an Empty node.
func (n *Node) Child(quadrant int) *Node { return n.children[quadrant] }

// Contains reports whether b is one of the bodies held by a Leaf node.
func (n *Node) Contains(b *body.Body) bool {
	for _, m := range n.members {
		if m == b {
			return true
		}
	}
	return false
}

// quadrant determines which quadrant of box contains p: NE iff
// x>=cx && y>=cy; NW iff x<cx && y>=cy; SE iff x>=cx && y<cy; SW
// otherwise.
func quadrant(box BoundingBox, p vector.Point) int {
	east := p.X >= box.Center.X
	north := p.Y >= box.Center.Y
	switch {
	case !east && north:
		return quadNW
	case east && north:
		return quadNE
	case !east && !north:
		return quadSW
	default:
		return quadSE
	}
}

// subdivide returns box split into its four child quadrants, in the
// canonical NW, NE, SW, SE order.
func subdivide(box BoundingBox) [4]*Node {
	half := box.HalfWidth / 2
	cx, cy := box.Center.X, box.Center.Y
	return [4]*Node{
		quadNW: {box: BoundingBox{Center: vector.Point{X: cx - half, Y: cy + half}, HalfWidth: half}},
		quadNE: {box: BoundingBox{Center: vector.Point{X: cx + half, Y: cy + half}, HalfWidth: half}},
		quadSW: {box: BoundingBox{Center: vector.Point{X: cx - half, Y: cy - half}, HalfWidth: half}},
		quadSE: {box: BoundingBox{Center: vector.Point{X: cx + half, Y: cy - half}, HalfWidth: half}},
	}
}
