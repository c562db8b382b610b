// Package vector provides the 2D point/displacement arithmetic shared by
// the body, quadtree, forcefield and integrator packages.
package vector

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an ordered pair of reals, used for both positions and
// velocities (as a per-step displacement). It is a thin domain alias
// over gonum's r2.Vec so the core gets vector arithmetic for free
// instead of hand-rolling it.
type Point struct {
	X, Y float64
}

// Zero is the origin. It also doubles as the sentinel position returned
// for unknown body ids (see field.Field.BodyPosition).
var Zero = Point{}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return fromVec(p.vec().Add(q.vec()))
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return fromVec(p.vec().Sub(q.vec()))
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return fromVec(p.vec().Scale(f))
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return r2.Norm(p.vec())
}

// Norm2 returns the squared Euclidean length of p, cheaper than Norm
// when only comparisons are needed.
func (p Point) Norm2() float64 {
	return r2.Norm2(p.vec())
}

// Unit returns the unit vector colinear with p. The zero vector maps to
// itself rather than gonum's {NaN,NaN}.
func (p Point) Unit() Point {
	if p.X == 0 && p.Y == 0 {
		return p
	}
	return fromVec(r2.Unit(p.vec()))
}

// Distance returns the displacement from q to p (p-q) and the Euclidean
// distance between them, the two values the quadtree's coincidence
// check works from.
func Distance(p, q Point) (Point, float64) {
	d := p.Sub(q)
	return d, d.Norm()
}

// IsFinite reports whether both components are finite. NaN/Inf inputs
// indicate a caller bug upstream (e.g. a malformed config) and are not
// sanitized by the core, which never calls this helper.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Rotate returns p rotated by theta radians about the origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
