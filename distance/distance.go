// Package distance provides distance functions for column clustering.
package distance

import (
	"math"

	"github.com/hupe1980/clustergo"
)

// Func compares two column values and returns their dissimilarity.
// Non-negative by convention; both engines treat smaller values as closer.
// No symmetry is enforced, but affinity propagation assumes it.
type Func[T any] func(a, b T) float64

// SquaredDiff is the default distance: the squared difference of the two
// values. Operands are widened to float64 before subtracting, so unsigned
// element types cannot wrap.
func SquaredDiff[T clustergo.Number](a, b T) float64 {
	d := float64(a) - float64(b)
	return d * d
}

// AbsDiff returns the absolute difference of the two values.
func AbsDiff[T clustergo.Number](a, b T) float64 {
	return math.Abs(float64(a) - float64(b))
}
