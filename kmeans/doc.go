// Package kmeans implements centroid-based clustering of a numeric column
// with a fixed cluster count, using Lloyd's algorithm.
//
// Centroids are seeded from random column positions (with replacement) and
// refined until every centroid moves by at most the convergence threshold,
// or the configured iteration cap is reached.
package kmeans
