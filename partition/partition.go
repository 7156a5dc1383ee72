// Package partition provides compressed, queryable membership views over
// cluster output.
//
// A Partition wraps one roaring bitmap per cluster group, answering
// membership, disjointness and coverage questions without rescanning the
// raw position lists. Like the groups it is built from, a Partition holds
// column positions, never column values.
package partition

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Partition is an immutable set view of cluster membership.
type Partition struct {
	groups []*roaring.Bitmap
	union  *roaring.Bitmap
	total  int
}

// FromGroups builds a Partition from per-cluster column-position lists, as
// produced by kmeans.Groups or affinity.Groups.
func FromGroups(groups [][]int) *Partition {
	p := &Partition{
		groups: make([]*roaring.Bitmap, len(groups)),
		union:  roaring.New(),
	}

	for i, group := range groups {
		rb := roaring.New()
		for _, pos := range group {
			rb.Add(uint32(pos))
		}

		p.groups[i] = rb
		p.union.Or(rb)
		p.total += len(group)
	}

	return p
}

// Groups returns the number of cluster groups.
func (p *Partition) Groups() int {
	return len(p.groups)
}

// Size returns the number of positions in the given group.
func (p *Partition) Size(group int) int {
	return int(p.groups[group].GetCardinality())
}

// Contains reports whether the given group holds the column position.
func (p *Partition) Contains(group, pos int) bool {
	return p.groups[group].Contains(uint32(pos))
}

// GroupOf returns the first group holding the column position.
func (p *Partition) GroupOf(pos int) (int, bool) {
	for i, rb := range p.groups {
		if rb.Contains(uint32(pos)) {
			return i, true
		}
	}

	return 0, false
}

// Total returns the number of distinct positions across all groups.
func (p *Partition) Total() int {
	return int(p.union.GetCardinality())
}

// Disjoint reports whether no position appears in more than one group.
func (p *Partition) Disjoint() bool {
	return p.total == p.Total()
}

// Covers reports whether the groups hold exactly the positions [0, n).
func (p *Partition) Covers(n int) bool {
	full := roaring.New()
	full.AddRange(0, uint64(n))

	return p.union.Equals(full)
}
