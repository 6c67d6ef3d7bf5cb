package embedview

import (
	"math"
	"sort"
)

// Sample is a single embedded attribution: its projected value vector,
// the cluster it was assigned to by the upstream clustering method,
// and the index of the originating attribution in the source database.
// SourceIndex is opaque to the viewer and passed through unchanged on
// hover and selection events.
type Sample struct {
	Value       []float64
	Cluster     int
	SourceIndex int
}

// PointSet is an ordered, index-addressable collection of samples.
// The insertion order is the canonical index used for back-references
// in selection and hover events.
//
// A PointSet is immutable once constructed; the host replaces it
// wholesale when the user switches category, embedding or clustering.
// All samples are assumed to share the same vector dimensionality
// (validated upstream, not re-checked here).
type PointSet struct {
	samples []Sample
}

// NewPointSet creates a point set from the given samples.
// The slice is retained; callers must not modify it afterwards.
func NewPointSet(samples []Sample) *PointSet {
	return &PointSet{samples: samples}
}

// Len returns the number of samples.
func (ps *PointSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.samples)
}

// At returns the sample at index i.
func (ps *PointSet) At(i int) Sample {
	return ps.samples[i]
}

// Samples returns the underlying sample slice.
// The returned slice must not be modified.
func (ps *PointSet) Samples() []Sample {
	if ps == nil {
		return nil
	}
	return ps.samples
}

// Dims returns the dimensionality of the sample value vectors,
// or 0 for an empty set.
func (ps *PointSet) Dims() int {
	if ps.Len() == 0 {
		return 0
	}
	return len(ps.samples[0].Value)
}

// MaxAbs returns the maximum absolute value across all samples along
// the given axis. Returns 0 for an empty set or an out-of-range axis.
func (ps *PointSet) MaxAbs(axis int) float64 {
	var maxAbs float64
	for i := range ps.Samples() {
		v := ps.samples[i].Value
		if axis < 0 || axis >= len(v) {
			continue
		}
		if a := math.Abs(v[axis]); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// DistinctClusters returns the distinct cluster ids present in the
// set, sorted ascending. The 0-based position of an id in this slice
// is its rank, used for even hue spacing regardless of id gaps.
func (ps *PointSet) DistinctClusters() []int {
	if ps.Len() == 0 {
		return nil
	}
	seen := make(map[int]struct{}, 8)
	for i := range ps.samples {
		seen[ps.samples[i].Cluster] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// fillFactor is the fraction of the viewport half-extent that the
// point with the largest magnitude on an axis is scaled to land at,
// so every point is visible without manual zoom.
const fillFactor = 0.95

// axisScale returns the world scale factor for one display axis:
// the viewport half-extent times fillFactor divided by the maximum
// absolute value on that axis. A zero maximum (all points on the
// axis line) yields a neutral factor of 1 instead of dividing by zero.
func axisScale(halfExtent, maxAbs float64) float64 {
	if maxAbs == 0 {
		return 1
	}
	return halfExtent * fillFactor / maxAbs
}
