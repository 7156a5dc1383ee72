// Package affinity implements exemplar-based clustering of a numeric column
// via affinity propagation.
//
// Unlike k-means, the cluster count is not configured: exemplars emerge from
// damped responsibility/availability message passing over the pairwise
// similarity matrix. The similarity diagonal is forced to the minimum
// off-diagonal similarity, which acts as a lever on how many exemplars are
// elected (lower self-similarity yields fewer). Zero exemplars is a valid
// outcome, not an error.
package affinity
