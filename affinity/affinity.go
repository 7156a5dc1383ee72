package affinity

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/internal/packed"
)

// DefaultDamping is the damping factor used when none is configured.
const DefaultDamping = 0.9

// Compile-time check that Clusterer satisfies the visitor contract.
var _ clustergo.Visitor[float64] = (*Clusterer[float64])(nil)

// Options configures optional Clusterer behavior.
type Options[T clustergo.Number] struct {
	// DistanceFunc compares two column values. It must be symmetric for the
	// message-passing updates to be meaningful; this is not validated.
	// Defaults to distance.SquaredDiff.
	DistanceFunc distance.Func[T]

	// Damping blends each message update with the previous round's value
	// for numerical stability. Must be in [0,1). Defaults to DefaultDamping.
	Damping float64

	// Logger receives compute progress at debug level. Defaults to no-op.
	Logger *clustergo.Logger
}

// Cluster groups column positions around an elected exemplar. The exemplar
// is itself a column position, unlike the synthetic k-means centroid.
type Cluster struct {
	Exemplar int
	Points   []int
}

// Clusterer discovers cluster count and membership from pairwise similarity
// alone, using a fixed number of synchronous message-passing rounds.
//
// A Clusterer is constructed once with its fixed parameters, elects its
// exemplars from scratch on every Compute call, and answers Result and
// Clusters queries against the last computed state. It is not safe for
// concurrent use. The transient working matrices cost O(n²) memory and
// O(n²·rounds) time; the caller must bound the input size accordingly.
type Clusterer[T clustergo.Number] struct {
	iterations int
	damping    float64
	dfunc      distance.Func[T]
	logger     *clustergo.Logger
	exemplars  []int
}

// New creates a Clusterer running exactly iterations message-passing rounds
// per Compute call. There is no early stopping.
func New[T clustergo.Number](iterations int, optFns ...func(o *Options[T])) (*Clusterer[T], error) {
	if iterations < 1 {
		return nil, clustergo.ErrInvalidIterations
	}

	opts := Options[T]{
		DistanceFunc: distance.SquaredDiff[T],
		Damping:      DefaultDamping,
		Logger:       clustergo.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Damping < 0 || opts.Damping >= 1 {
		return nil, &clustergo.ErrInvalidDamping{Damping: opts.Damping}
	}

	return &Clusterer[T]{
		iterations: iterations,
		damping:    opts.Damping,
		dfunc:      opts.DistanceFunc,
		logger:     opts.Logger,
	}, nil
}

// Pre implements the visitor contract. It is a no-op.
func (c *Clusterer[T]) Pre() {}

// Post implements the visitor contract. It is a no-op.
func (c *Clusterer[T]) Post() {}

// Compute elects exemplars over min(idx.Len(), col.Len()) positions,
// replacing any previously computed exemplar set.
func (c *Clusterer[T]) Compute(idx clustergo.Index, col clustergo.Column[T]) {
	n := clustergo.EffectiveLen(idx, col)

	sim := c.similarity(col, n)
	respon, avail := c.propagate(sim, n)

	c.exemplars = c.exemplars[:0]
	for i := 0; i < n; i++ {
		if respon.At(i, i)+avail.At(i, i) > 0 {
			c.exemplars = append(c.exemplars, i)
		}
	}

	c.logger.LogExemplarCompute(n, c.iterations, len(c.exemplars))
}

// Result returns the column positions elected as exemplars. The slice is
// the engine's live state and may be empty; callers must not mutate it.
func (c *Clusterer[T]) Result() []int {
	return c.exemplars
}

// Clusters assigns every column position to its nearest exemplar by the
// configured distance function, ties to the first exemplar found. With zero
// exemplars it returns an empty partition.
func (c *Clusterer[T]) Clusters(idx clustergo.Index, col clustergo.Column[T]) []Cluster {
	if len(c.exemplars) == 0 {
		return nil
	}

	n := clustergo.EffectiveLen(idx, col)

	clusters := make([]Cluster, len(c.exemplars))
	for i, pos := range c.exemplars {
		clusters[i].Exemplar = pos
		clusters[i].Points = make([]int, 0, n/len(c.exemplars))
	}

	for p := 0; p < n; p++ {
		bestDist := math.MaxFloat64
		best := 0

		for i, pos := range c.exemplars {
			if d := c.dfunc(col.At(p), col.At(pos)); d < bestDist {
				bestDist = d
				best = i
			}
		}

		clusters[best].Points = append(clusters[best].Points, p)
	}

	return clusters
}

// similarity builds the packed pairwise similarity matrix: negated distance
// off the diagonal, and every diagonal entry forced to the global minimum
// off-diagonal similarity.
func (c *Clusterer[T]) similarity(col clustergo.Column[T], n int) *packed.Triangular {
	sim := packed.New(n)
	minVal := math.MaxFloat64

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			v := -c.dfunc(col.At(i), col.At(j))

			sim.Set(i, j, v)
			if v < minVal {
				minVal = v
			}
		}
	}

	for i := 0; i < n; i++ {
		sim.Set(i, i, minVal)
	}

	return sim
}

// propagate runs the configured number of synchronous message-passing
// rounds and returns the final responsibility and availability matrices.
// Message (i→j) values live at row j, column i.
func (c *Clusterer[T]) propagate(sim *packed.Triangular, n int) (respon, avail *mat.Dense) {
	respon = mat.NewDense(max(n, 1), max(n, 1), nil)
	avail = mat.NewDense(max(n, 1), max(n, 1), nil)

	for round := 0; round < c.iterations; round++ {
		// Responsibility: how well j is suited to represent i, relative to
		// the best competing candidate. Uses the previous round's full
		// availability matrix.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				maxDiff := -math.MaxFloat64

				for jj := 0; jj < n; jj++ {
					if jj == j {
						continue
					}
					if v := sim.At(i, jj) + avail.At(jj, i); v > maxDiff {
						maxDiff = v
					}
				}

				respon.Set(j, i,
					(1-c.damping)*(sim.At(i, j)-maxDiff)+
						c.damping*respon.At(j, i))
			}
		}

		// Availability: accumulated evidence that i should pick j, net of
		// competing claims. Uses the just-updated responsibilities.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					sum := 0.0
					for ii := 0; ii < n; ii++ {
						if ii == i {
							continue
						}
						sum += math.Max(0, respon.At(j, ii))
					}

					avail.Set(j, i,
						(1-c.damping)*sum+c.damping*avail.At(j, i))
				} else {
					sum := 0.0
					for ii := 0; ii < n; ii++ {
						if ii == i || ii == j {
							continue
						}
						sum += math.Max(0, respon.At(j, ii))
					}

					avail.Set(j, i,
						(1-c.damping)*math.Min(0, respon.At(j, j)+sum)+
							c.damping*avail.At(j, i))
				}
			}
		}
	}

	return respon, avail
}

// Groups extracts the column-position lists from clusters, e.g. for
// building a partition.Partition.
func Groups(clusters []Cluster) [][]int {
	groups := make([][]int, len(clusters))
	for i, cl := range clusters {
		groups[i] = cl.Points
	}

	return groups
}
