package quadtree

import "github.com/johnxnguyen/newton/vector"

// BoundingBox is an axis-aligned square, described by its center and
// half-width.
type BoundingBox struct {
	Center    vector.Point
	HalfWidth float64
}

// Contains reports whether p lies within the box. The upper bound on
// each axis is half-open so quadrant assignment (see quadrant) is a
// total function: every point inside the box belongs to exactly one
// quadrant.
func (box BoundingBox) Contains(p vector.Point) bool {
	return p.X >= box.Center.X-box.HalfWidth && p.X < box.Center.X+box.HalfWidth &&
		p.Y >= box.Center.Y-box.HalfWidth && p.Y < box.Center.Y+box.HalfWidth
}

// Side returns the side length of the box (2 * HalfWidth), used by the
// multipole-acceptance criterion.
func (box BoundingBox) Side() float64 {
	return 2 * box.HalfWidth
}

// margin expands a tight bounding square by a small fraction so no body
// sits exactly on the upper, half-open boundary.
const margin = 1e-6

// boundingSquare computes the smallest square containing every position
// in ps, expanded by a small margin. Callers must pass a non-empty
// slice; Build guards the empty case itself.
func boundingSquare(ps []vector.Point) BoundingBox {
	minX, maxX := ps[0].X, ps[0].X
	minY, maxY := ps[0].Y, ps[0].Y
	for _, p := range ps[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := (maxX - minX) / 2
	if hy := (maxY - minY) / 2; hy > half {
		half = hy
	}
	// Guard against a degenerate (single-point or coincident) set: a
	// zero-width square can't contain anything, including itself.
	if half == 0 {
		half = margin
	}
	half *= 1 + margin

	return BoundingBox{Center: vector.Point{X: cx, Y: cy}, HalfWidth: half}
}
