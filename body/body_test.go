package body_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnxnguyen/newton/body"
	"github.com/johnxnguyen/newton/vector"
)

func TestNew(t *testing.T) {
	b := body.New(7, 1000, vector.Point{X: 1, Y: 2}, vector.Point{X: 0, Y: 1})

	assert.Equal(t, uint64(7), b.ID)
	assert.Equal(t, 1000.0, b.Mass)
	assert.Equal(t, vector.Point{X: 1, Y: 2}, b.Position)
	assert.Equal(t, vector.Point{X: 0, Y: 1}, b.Velocity)
	assert.Equal(t, vector.Point{}, b.Force)
}

func TestAddForceAndReset(t *testing.T) {
	b := body.New(1, 1, vector.Point{}, vector.Point{})

	b.AddForce(vector.Point{X: 1, Y: 1})
	b.AddForce(vector.Point{X: 2, Y: -1})
	assert.Equal(t, vector.Point{X: 3, Y: 0}, b.Force)

	b.ResetForce()
	assert.Equal(t, vector.Point{}, b.Force)
}
