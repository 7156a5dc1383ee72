// Package packed provides packed triangular storage for symmetric matrices.
//
// Used internally by the affinity engine for the pairwise similarity matrix,
// halving its memory footprint.
package packed

// Triangular stores the upper triangle (diagonal included) of a symmetric
// n×n float64 matrix in n*(n+1)/2 entries.
type Triangular struct {
	n    int
	data []float64
}

// New creates a zeroed n×n packed triangular matrix.
func New(n int) *Triangular {
	return &Triangular{
		n:    n,
		data: make([]float64, n*(n+1)/2),
	}
}

// offset maps (i, j) with i <= j to its row-major packed position.
func (t *Triangular) offset(i, j int) int {
	return i*t.n + j - i*(i+1)/2
}

// At returns the (i, j) entry. Access is symmetric: At(i, j) == At(j, i).
func (t *Triangular) At(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return t.data[t.offset(i, j)]
}

// Set stores v at (i, j) and, by symmetry, at (j, i).
func (t *Triangular) Set(i, j int, v float64) {
	if i > j {
		i, j = j, i
	}
	t.data[t.offset(i, j)] = v
}

// N returns the matrix dimension.
func (t *Triangular) N() int {
	return t.n
}

// Len returns the number of stored entries, n*(n+1)/2.
func (t *Triangular) Len() int {
	return len(t.data)
}
