package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnxnguyen/newton/vector"
)

func TestAddSub(t *testing.T) {
	p := vector.Point{X: 1, Y: 2}
	q := vector.Point{X: 3, Y: -1}

	assert.Equal(t, vector.Point{X: 4, Y: 1}, p.Add(q))
	assert.Equal(t, vector.Point{X: -2, Y: 3}, p.Sub(q))
}

func TestScale(t *testing.T) {
	p := vector.Point{X: 2, Y: -3}
	assert.Equal(t, vector.Point{X: 5, Y: -7.5}, p.Scale(2.5))
}

func TestNorm(t *testing.T) {
	p := vector.Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, p.Norm())
	assert.Equal(t, 25.0, p.Norm2())
}

func TestUnitZero(t *testing.T) {
	// Unit of the zero vector must not produce NaN: callers rely on this
	// to avoid guarding every call site a second time.
	z := vector.Point{}
	u := z.Unit()
	assert.False(t, math.IsNaN(u.X))
	assert.Equal(t, vector.Point{}, u)
}

func TestDistance(t *testing.T) {
	a := vector.Point{X: 0, Y: 0}
	b := vector.Point{X: 3, Y: 4}

	d, dist := vector.Distance(b, a)
	assert.Equal(t, vector.Point{X: 3, Y: 4}, d)
	assert.Equal(t, 5.0, dist)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, vector.Point{X: 1, Y: 2}.IsFinite())
	assert.False(t, vector.Point{X: math.NaN(), Y: 0}.IsFinite())
	assert.False(t, vector.Point{X: math.Inf(1), Y: 0}.IsFinite())
}

func TestRotate(t *testing.T) {
	p := vector.Point{X: 1, Y: 0}
	r := p.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, 1e-9)
	assert.InDelta(t, 1.0, r.Y, 1e-9)
}
