package kdgo

import (
	"math"
	"slices"

	"github.com/hupe1980/kdgo/distance"
	"github.com/hupe1980/kdgo/selection"
)

// QueryOptions tune a single query operation. A nil *QueryOptions is valid
// and means defaults everywhere.
type QueryOptions[F distance.Float, T any] struct {
	// Filter gates candidates before they enter the result set, so rejected
	// items never consume a slot. A nil Filter accepts everything.
	Filter func(item T) bool

	// Sorted requests strictly ascending delivery order for
	// NearestNeighbours. Unsorted delivery is cheaper and yields the same
	// multiset in internal heap order.
	Sorted bool

	// Scratch optionally supplies a bounded heap reused across queries to
	// avoid per-query allocation. It is rebounded to the requested k and
	// left empty afterwards. Results are identical with or without it.
	Scratch *selection.Heap[F, T]
}

func (o *QueryOptions[F, T]) filter() func(T) bool {
	if o == nil {
		return nil
	}
	return o.Filter
}

// NearestNeighbour returns the minimum distance from query to any stored
// point, or NaN when the tree is empty, the query length does not match the
// tree dimensionality, or no candidate yields a valid (non-NaN) distance.
// If consumer is non-nil it is invoked once with the closest item and its
// distance; among tied candidates exactly one arbitrary item is delivered.
func (t *Tree[F, T]) NearestNeighbour(query []F, distFn distance.Func[F], opts *QueryOptions[F, T], consumer func(item T, dist F)) F {
	nan := F(math.NaN())
	if t.count == 0 || len(query) != t.dims {
		return nan
	}

	s := nnState[F, T]{
		query:   query,
		scratch: slices.Clone(query),
		distFn:  distFn,
		filter:  opts.filter(),
		best:    F(math.Inf(1)),
	}
	t.nearest(0, &s)

	if !s.found {
		return nan
	}
	if consumer != nil {
		consumer(s.bestItem, s.best)
	}
	return s.best
}

type nnState[F distance.Float, T any] struct {
	query    []F
	scratch  []F // closest point to query within the current subtree region
	distFn   distance.Func[F]
	filter   func(T) bool
	best     F
	bestItem T
	found    bool
}

func (t *Tree[F, T]) nearest(idx int32, s *nnState[F, T]) {
	n := &t.nodes[idx]

	if n.leaf() {
		for i, p := range n.points {
			if s.filter != nil && !s.filter(n.items[i]) {
				continue
			}
			if d := s.distFn(s.query, p); d < s.best {
				s.best = d
				s.bestItem = n.items[i]
				s.found = true
			}
		}
		return
	}

	near, far := n.left, n.right
	if !(s.query[n.axis] <= n.split) {
		near, far = far, near
	}

	t.nearest(near, s)

	// The far region is bounded by the split plane on this axis; clamping
	// the scratch point there yields its minimum possible distance. A NaN
	// bound fails the comparison and we descend, never pruning on NaN.
	old := s.scratch[n.axis]
	s.scratch[n.axis] = n.split
	if !(s.distFn(s.query, s.scratch) > s.best) {
		t.nearest(far, s)
	}
	s.scratch[n.axis] = old
}

// NearestNeighbours finds up to k nearest points and reports whether
// anything was delivered. It returns false without delivering when the tree
// is empty, k <= 0, the query length does not match, or no candidate has a
// valid distance. Delivery order is ascending when opts.Sorted is set,
// otherwise unspecified with identical multiset content.
func (t *Tree[F, T]) NearestNeighbours(query []F, k int, distFn distance.Func[F], opts *QueryOptions[F, T], consumer func(item T, dist F)) bool {
	if t.count == 0 || k <= 0 || len(query) != t.dims {
		return false
	}

	var h *selection.Heap[F, T]
	if opts != nil && opts.Scratch != nil {
		h = opts.Scratch
		h.Rebound(k)
	} else {
		h = selection.NewHeap[F, T](k)
	}

	s := knnState[F, T]{
		query:   query,
		scratch: slices.Clone(query),
		distFn:  distFn,
		filter:  opts.filter(),
		heap:    h,
	}
	t.knn(0, &s)

	if h.Len() == 0 {
		return false
	}
	if opts != nil && opts.Sorted {
		h.DrainSorted(consumer)
	} else {
		h.Drain(consumer)
	}
	return true
}

type knnState[F distance.Float, T any] struct {
	query   []F
	scratch []F
	distFn  distance.Func[F]
	filter  func(T) bool
	heap    *selection.Heap[F, T]
}

func (t *Tree[F, T]) knn(idx int32, s *knnState[F, T]) {
	n := &t.nodes[idx]

	if n.leaf() {
		for i, p := range n.points {
			if s.filter != nil && !s.filter(n.items[i]) {
				continue
			}
			s.heap.Push(s.distFn(s.query, p), n.items[i])
		}
		return
	}

	near, far := n.left, n.right
	if !(s.query[n.axis] <= n.split) {
		near, far = far, near
	}

	t.knn(near, s)

	old := s.scratch[n.axis]
	s.scratch[n.axis] = n.split
	prune := false
	if s.heap.Full() {
		if worst, ok := s.heap.Worst(); ok {
			// NaN bound fails the comparison: descend, never prune on NaN.
			prune = s.distFn(s.query, s.scratch) > worst
		}
	}
	if !prune {
		t.knn(far, s)
	}
	s.scratch[n.axis] = old
}

// FindNeighbours delivers every point within radius of the query (by the
// supplied distance function, so a squared-Euclidean metric needs a squared
// radius) and reports whether at least one matched. Delivery order is
// unspecified. NaN distances never match; a NaN radius matches nothing.
func (t *Tree[F, T]) FindNeighbours(query []F, radius F, distFn distance.Func[F], opts *QueryOptions[F, T], consumer func(item T, dist F)) bool {
	if t.count == 0 || len(query) != t.dims {
		return false
	}

	s := rangeState[F, T]{
		query:    query,
		scratch:  slices.Clone(query),
		radius:   radius,
		distFn:   distFn,
		filter:   opts.filter(),
		consumer: consumer,
	}
	t.within(0, &s)
	return s.found
}

type rangeState[F distance.Float, T any] struct {
	query    []F
	scratch  []F
	radius   F
	distFn   distance.Func[F]
	filter   func(T) bool
	consumer func(T, F)
	found    bool
}

func (t *Tree[F, T]) within(idx int32, s *rangeState[F, T]) {
	n := &t.nodes[idx]

	if n.leaf() {
		for i, p := range n.points {
			if s.filter != nil && !s.filter(n.items[i]) {
				continue
			}
			if d := s.distFn(s.query, p); d <= s.radius {
				s.found = true
				if s.consumer != nil {
					s.consumer(n.items[i], d)
				}
			}
		}
		return
	}

	near, far := n.left, n.right
	if !(s.query[n.axis] <= n.split) {
		near, far = far, near
	}

	t.within(near, s)

	old := s.scratch[n.axis]
	s.scratch[n.axis] = n.split
	if !(s.distFn(s.query, s.scratch) > s.radius) {
		t.within(far, s)
	}
	s.scratch[n.axis] = old
}
