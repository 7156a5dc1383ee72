package kmeans

import (
	"math"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/util"
)

// convergenceThreshold is the maximum per-centroid movement, measured by the
// configured distance function, that still counts as converged.
const convergenceThreshold = 1e-7

// Compile-time check that Clusterer satisfies the visitor contract.
var _ clustergo.Visitor[float64] = (*Clusterer[float64])(nil)

// Options configures optional Clusterer behavior.
type Options[T clustergo.Number] struct {
	// DistanceFunc compares a point to a centroid.
	// Defaults to distance.SquaredDiff.
	DistanceFunc distance.Func[T]

	// RNG seeds the initial centroids. Defaults to a wall-clock-seeded
	// util.RNG; inject a fixed-seed source for reproducible runs.
	RNG util.Source

	// Logger receives compute progress at debug level. Defaults to no-op.
	Logger *clustergo.Logger
}

// Cluster groups column positions around a computed centroid. The centroid
// is a synthetic mean value, not a column position.
type Cluster[T clustergo.Number] struct {
	Centroid T
	Points   []int
}

// Clusterer partitions a numeric column into exactly k groups.
//
// A Clusterer is constructed once with its fixed parameters, computes its
// centroids from scratch on every Compute call, and answers Result and
// Clusters queries against the last computed state. It is not safe for
// concurrent use.
type Clusterer[T clustergo.Number] struct {
	k          int
	iterations int
	dfunc      distance.Func[T]
	rng        util.Source
	logger     *clustergo.Logger
	centroids  []T
}

// New creates a Clusterer producing k clusters, refining for at most
// iterations rounds per Compute call.
//
// Data is not validated: computing over an effective size smaller than k is
// undefined, per the engine contract.
func New[T clustergo.Number](k, iterations int, optFns ...func(o *Options[T])) (*Clusterer[T], error) {
	if k < 1 {
		return nil, clustergo.ErrInvalidK
	}
	if iterations < 1 {
		return nil, clustergo.ErrInvalidIterations
	}

	opts := Options[T]{
		DistanceFunc: distance.SquaredDiff[T],
		RNG:          util.NewTimeRNG(),
		Logger:       clustergo.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Clusterer[T]{
		k:          k,
		iterations: iterations,
		dfunc:      opts.DistanceFunc,
		rng:        opts.RNG,
		logger:     opts.Logger,
		centroids:  make([]T, k),
	}, nil
}

// Pre implements the visitor contract. It is a no-op.
func (c *Clusterer[T]) Pre() {}

// Post implements the visitor contract. It is a no-op.
func (c *Clusterer[T]) Post() {}

// Compute runs Lloyd's algorithm over min(idx.Len(), col.Len()) positions,
// replacing any previously computed centroids.
func (c *Clusterer[T]) Compute(idx clustergo.Index, col clustergo.Column[T]) {
	n := clustergo.EffectiveLen(idx, col)

	// Seed centroids from random column positions, with replacement.
	// Duplicate seeds are possible and not corrected.
	for i := range c.centroids {
		c.centroids[i] = col.At(c.rng.Intn(n))
	}

	assignments := make([]int, n)
	sums := make([]T, c.k)
	counts := make([]float64, c.k)

	iter := 0
	converged := false

	for ; iter < c.iterations; iter++ {
		for p := 0; p < n; p++ {
			assignments[p] = c.nearest(col.At(p))
		}

		for j := range sums {
			sums[j] = 0
			counts[j] = 0
		}
		for p := 0; p < n; p++ {
			cluster := assignments[p]
			sums[cluster] += col.At(p)
			counts[cluster]++
		}

		done := true

		for j := range c.centroids {
			// Turn 0/0 into 0/1: an empty cluster keeps a degenerate
			// zero-sum centroid instead of failing the division.
			count := math.Max(1, counts[j])
			mean := T(float64(sums[j]) / count)

			if c.dfunc(mean, c.centroids[j]) > convergenceThreshold {
				done = false
				c.centroids[j] = mean
			}
		}

		if done {
			converged = true
			iter++
			break
		}
	}

	c.logger.LogCentroidCompute(n, c.k, iter, converged)
}

// Result returns the computed centroids. The slice is the engine's live
// state, always exactly k entries; callers must not mutate it.
func (c *Clusterer[T]) Result() []T {
	return c.centroids
}

// Clusters separates the column into k groups by nearest centroid,
// recomputing assignments from the current centroids. Ties go to the lowest
// cluster index. Each group holds column positions; the group's centroid
// value rides along in the Centroid field.
func (c *Clusterer[T]) Clusters(idx clustergo.Index, col clustergo.Column[T]) []Cluster[T] {
	n := clustergo.EffectiveLen(idx, col)

	clusters := make([]Cluster[T], c.k)
	for j := range clusters {
		clusters[j].Centroid = c.centroids[j]
		clusters[j].Points = make([]int, 0, n/c.k+2)
	}

	for p := 0; p < n; p++ {
		best := c.nearest(col.At(p))
		clusters[best].Points = append(clusters[best].Points, p)
	}

	return clusters
}

// nearest returns the index of the centroid strictly closest to v; ties
// resolve to the lowest index encountered first.
func (c *Clusterer[T]) nearest(v T) int {
	bestDist := math.MaxFloat64
	best := 0

	for j, m := range c.centroids {
		if d := c.dfunc(v, m); d < bestDist {
			bestDist = d
			best = j
		}
	}

	return best
}

// Groups extracts the column-position lists from clusters, e.g. for
// building a partition.Partition.
func Groups[T clustergo.Number](clusters []Cluster[T]) [][]int {
	groups := make([][]int, len(clusters))
	for i, cl := range clusters {
		groups[i] = cl.Points
	}

	return groups
}
