// Package clustergo provides unsupervised clustering engines for single
// numeric columns.
//
// Two engines are included:
//
//   - kmeans: centroid-based partitioning with a fixed cluster count (Lloyd's
//     algorithm with random seeding from the data)
//   - affinity: exemplar discovery via affinity propagation, where the
//     cluster count emerges from the data and the damping factor
//
// Both engines consume a positionally addressable column and a distance
// function, and implement the same lifecycle: construct once with fixed
// parameters, call Compute to run the algorithm, then query Result and
// Clusters any number of times. Re-invoking Compute discards prior state.
//
// # Quick Start
//
//	col := clustergo.Slice[float64]{0, 0, 0, 10, 10, 10}
//
//	km, _ := kmeans.New[float64](2, 10)
//	km.Compute(col, col)
//	centroids := km.Result()          // 2 centroid values
//	groups := km.Clusters(col, col)   // 2 groups of column positions
//
//	ap, _ := affinity.New[float64](50)
//	ap.Compute(col, col)
//	exemplars := ap.Result()          // elected column positions (may be empty)
//	groups2 := ap.Clusters(col, col)
//
// # Columns and Indexes
//
// Engines never copy the column; cluster output holds column positions, so
// the column must outlive any cluster view derived from it. The index
// argument only caps the run length: min(idx.Len(), col.Len()) positions are
// processed. Pass the column itself, or a Span, when no separate index
// column exists.
//
// # Determinism
//
// The k-means engine seeds centroids from an injected random source
// (util.RNG); fix the seed to make runs reproducible. Affinity propagation
// is fully deterministic.
//
// # Caller Obligations
//
// The engines perform no data validation by design: an effective size
// smaller than K, or a non-symmetric distance function handed to the
// affinity engine, yields undefined results. Constructor configuration
// (cluster count, iteration cap, damping factor) is validated.
package clustergo
