package config

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/johnxnguyen/newton/field"
	"github.com/johnxnguyen/newton/vector"
)

// Populate expands every group in the document into concrete bodies and
// adds them to f, in document order, with sequential ids starting at 0.
// This recovers the teacher's InitializeGalaxy/GalaxyPush composition
// (randomized group generation plus a rigid transform per group) as a
// declarative operation instead of hard-coded Go constants.
func (d *Document) Populate(f *field.Field) error {
	var nextID uint64
	for i, g := range d.Groups {
		src := rand.NewSource(uint64(g.Seed))
		massDist := distuv.Uniform{Min: g.MassMin, Max: g.MassMax, Src: src}
		radiusDist := distuv.Uniform{Min: g.MinDist, Max: g.MaxDist, Src: src}
		angleDist := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}

		center := vector.Point{X: g.Center[0], Y: g.Center[1]}

		for j := 0; j < g.Count; j++ {
			mass := massDist.Rand()
			r := radiusDist.Rand()
			theta := angleDist.Rand()

			position := vector.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
			tangent := vector.Point{X: -math.Sin(theta), Y: math.Cos(theta)}
			velocity := tangent.Scale(g.Tangential)

			if g.Rotation != 0 {
				position = position.Rotate(g.Rotation)
				velocity = velocity.Rotate(g.Rotation)
			}
			position = position.Add(center)

			if err := f.AddBody(nextID, mass, position, velocity); err != nil {
				return fmt.Errorf("config: group %d body %d: %w", i, j, err)
			}
			nextID++
		}
	}
	return nil
}
