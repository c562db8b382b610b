package field

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/johnxnguyen/newton/vector"
)

// AddRadialDistribution populates the Field with n bodies of unit mass,
// scattered uniformly over the annulus [minDist, maxDist] from the
// origin at uniformly random angles, each given a tangential initial
// velocity of magnitude dy. Per spec.md §4.5, this is a convenience for
// building test/demo configurations; it is not load-bearing for core
// correctness. src seeds the sampling and may be nil, in which case a
// package-default source is used.
func (f *Field) AddRadialDistribution(n int, minDist, maxDist, dy float64, src rand.Source) error {
	if src == nil {
		src = rand.NewSource(1)
	}
	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	radius := distuv.Uniform{Min: minDist, Max: maxDist, Src: src}

	for i := 0; i < n; i++ {
		theta := angle.Rand()
		r := radius.Rand()

		position := vector.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		tangent := vector.Point{X: -math.Sin(theta), Y: math.Cos(theta)}
		velocity := tangent.Scale(dy)

		id := f.nextID()
		if err := f.AddBody(id, 1.0, position, velocity); err != nil {
			return err
		}
	}
	return nil
}

// nextID returns the first id, counting up from the current body count,
// that is not currently present in the Field (smaller unused ids are
// not considered), so a Field built
// purely through AddRadialDistribution gets compact sequential ids.
func (f *Field) nextID() uint64 {
	id := uint64(len(f.order))
	for {
		if _, exists := f.bodies[id]; !exists {
			return id
		}
		id++
	}
}
