package clustergo

// Number constrains column element types to builtin numerics. Both engines
// need addition, subtraction and scalar division (centroid averaging and the
// default squared-difference distance); every builtin numeric type qualifies.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Column is an ordered, positionally addressable sequence of values.
// Engines only read it; the caller keeps ownership and must keep it alive
// for as long as cluster views derived from it are in use.
type Column[T any] interface {
	Len() int
	At(i int) T
}

// Index caps how many column positions an engine processes. Engines read
// nothing from it but its length: the effective size of a run is
// min(idx.Len(), col.Len()).
type Index interface {
	Len() int
}

// Slice adapts a plain Go slice to the Column (and Index) contract.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// At returns the element at position i.
func (s Slice[T]) At(i int) T { return s[i] }

// Span is an Index of a fixed length, for callers that have no real index
// column to align against.
type Span int

// Len returns the span length.
func (s Span) Len() int { return int(s) }

// EffectiveLen returns the number of positions an engine run covers:
// min(idx.Len(), col.Len()).
func EffectiveLen(idx Index, col Index) int {
	n := col.Len()
	if m := idx.Len(); m < n {
		n = m
	}
	return n
}

// Visitor is the uniform contract for computational objects applied to a
// column: no-op lifecycle hooks around a single mutating Compute, followed
// by any number of non-mutating result queries on the implementing type.
// Re-invoking Compute discards all prior state.
type Visitor[T any] interface {
	// Pre is invoked before Compute. It is a no-op for both engines.
	Pre()

	// Compute runs the algorithm over min(idx.Len(), col.Len()) positions.
	Compute(idx Index, col Column[T])

	// Post is invoked after Compute. It is a no-op for both engines.
	Post()
}
