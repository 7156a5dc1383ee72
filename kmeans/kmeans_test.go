package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/partition"
	"github.com/hupe1980/clustergo/util"
)

// seedSource replays a fixed sequence of column positions, making centroid
// seeding fully deterministic.
type seedSource struct {
	seq []int
	i   int
}

func (s *seedSource) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v % n
}

func withSeeds[T clustergo.Number](seq ...int) func(o *Options[T]) {
	return func(o *Options[T]) {
		o.RNG = &seedSource{seq: seq}
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New[float64](0, 10)
	assert.ErrorIs(t, err, clustergo.ErrInvalidK)

	_, err = New[float64](2, 0)
	assert.ErrorIs(t, err, clustergo.ErrInvalidIterations)
}

func TestComputeTwoClusters(t *testing.T) {
	col := clustergo.Slice[float64]{0, 0, 0, 10, 10, 10}

	c, err := New(2, 10, withSeeds[float64](0, 3))
	require.NoError(t, err)

	c.Pre()
	c.Compute(col, col)
	c.Post()

	require.Equal(t, []float64{0, 10}, c.Result())

	clusters := c.Clusters(col, col)
	require.Len(t, clusters, 2)
	assert.Equal(t, 0.0, clusters[0].Centroid)
	assert.Equal(t, []int{0, 1, 2}, clusters[0].Points)
	assert.Equal(t, 10.0, clusters[1].Centroid)
	assert.Equal(t, []int{3, 4, 5}, clusters[1].Points)
}

func TestResultAlwaysK(t *testing.T) {
	col := clustergo.Slice[float64]{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}

	for _, k := range []int{1, 2, 3, 5} {
		c, err := New(k, 25, func(o *Options[float64]) {
			o.RNG = util.NewRNG(4711)
		})
		require.NoError(t, err)

		c.Compute(col, col)
		assert.Len(t, c.Result(), k)
	}
}

func TestClustersPartitionColumn(t *testing.T) {
	col := clustergo.Slice[float64]{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}

	c, err := New(3, 25, func(o *Options[float64]) {
		o.RNG = util.NewRNG(42)
	})
	require.NoError(t, err)

	c.Compute(col, col)

	p := partition.FromGroups(Groups(c.Clusters(col, col)))
	assert.Equal(t, 3, p.Groups())
	assert.True(t, p.Disjoint())
	assert.True(t, p.Covers(col.Len()))
}

func TestClustersIdempotent(t *testing.T) {
	col := clustergo.Slice[float64]{3, 1, 4, 1, 5, 9, 2, 6}

	c, err := New(2, 25, func(o *Options[float64]) {
		o.RNG = util.NewRNG(7)
	})
	require.NoError(t, err)

	c.Compute(col, col)

	first := c.Clusters(col, col)
	second := c.Clusters(col, col)
	assert.Equal(t, first, second)
}

func TestEffectiveSizeEqualsK(t *testing.T) {
	col := clustergo.Slice[float64]{1, 5, 9}

	c, err := New(3, 10, withSeeds[float64](0, 1, 2))
	require.NoError(t, err)

	c.Compute(col, col)
	assert.Equal(t, []float64{1, 5, 9}, c.Result())

	clusters := c.Clusters(col, col)
	require.Len(t, clusters, 3)
	for j, cl := range clusters {
		assert.Equal(t, col[j], cl.Centroid)
		assert.Equal(t, []int{j}, cl.Points)
	}
}

func TestDuplicateSeedsDegenerateCluster(t *testing.T) {
	// Both centroids seed to the same point. The emptied cluster is carried
	// through the forced divisor of 1 instead of being reseeded; refinement
	// still separates the two groups.
	col := clustergo.Slice[float64]{0, 0, 0, 10, 10, 10}

	c, err := New(2, 10, withSeeds[float64](3, 3))
	require.NoError(t, err)

	c.Compute(col, col)
	require.Equal(t, []float64{10, 0}, c.Result())

	clusters := c.Clusters(col, col)
	assert.Equal(t, []int{3, 4, 5}, clusters[0].Points)
	assert.Equal(t, []int{0, 1, 2}, clusters[1].Points)
}

func TestBoundingIndexCapsRun(t *testing.T) {
	col := clustergo.Slice[float64]{0, 0, 0, 10, 10, 10, 1000, 1000}

	// Only the first six positions are visible through the index.
	c, err := New(2, 10, withSeeds[float64](0, 3))
	require.NoError(t, err)

	c.Compute(clustergo.Span(6), col)
	require.Equal(t, []float64{0, 10}, c.Result())

	clusters := c.Clusters(clustergo.Span(6), col)
	p := partition.FromGroups(Groups(clusters))
	assert.True(t, p.Covers(6))
}

func TestRecomputeDiscardsState(t *testing.T) {
	first := clustergo.Slice[float64]{0, 0, 0, 10, 10, 10}
	second := clustergo.Slice[float64]{5, 5, 5, 5}

	c, err := New(2, 10, withSeeds[float64](0, 3, 0, 1))
	require.NoError(t, err)

	c.Compute(first, first)
	require.Equal(t, []float64{0, 10}, c.Result())

	// Both centroids reseed to 5; cluster 1 empties out and degenerates to
	// the zero-sum centroid.
	c.Compute(second, second)
	assert.Equal(t, []float64{5, 0}, c.Result())
}

func TestIntegerColumn(t *testing.T) {
	col := clustergo.Slice[int]{0, 0, 0, 9, 9, 9}

	c, err := New(2, 10, withSeeds[int](0, 3))
	require.NoError(t, err)

	c.Compute(col, col)
	assert.Equal(t, []int{0, 9}, c.Result())
}
