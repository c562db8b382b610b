package integrator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnxnguyen/newton/body"
	"github.com/johnxnguyen/newton/integrator"
	"github.com/johnxnguyen/newton/vector"
)

func TestStepUpdatesVelocityThenPosition(t *testing.T) {
	b := body.New(0, 2, vector.Point{X: 0, Y: 0}, vector.Point{X: 1, Y: 0})
	b.AddForce(vector.Point{X: 4, Y: 0}) // a = F/m = 2

	integrator.Step(b, integrator.DefaultDt)

	assert.Equal(t, vector.Point{X: 3, Y: 0}, b.Velocity) // 1 + 2
	assert.Equal(t, vector.Point{X: 3, Y: 0}, b.Position)  // 0 + 3*1 (new velocity)
}

func TestStepAtRestWithNoForceIsNoOp(t *testing.T) {
	b := body.New(0, 1, vector.Point{X: 5, Y: -2}, vector.Point{})
	integrator.Step(b, integrator.DefaultDt)

	assert.Equal(t, vector.Point{X: 5, Y: -2}, b.Position)
	assert.Equal(t, vector.Point{}, b.Velocity)
}

func TestStepRespectsCustomDt(t *testing.T) {
	b := body.New(0, 1, vector.Point{}, vector.Point{X: 2, Y: 0})
	integrator.Step(b, 0.5)

	assert.Equal(t, vector.Point{X: 2, Y: 0}, b.Velocity)
	assert.Equal(t, vector.Point{X: 1, Y: 0}, b.Position)
}
