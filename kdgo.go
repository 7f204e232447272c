package kdgo

import (
	"slices"

	"github.com/hupe1980/kdgo/distance"
)

// Tree is an in-process multidimensional point index over coordinate points
// of precision F carrying opaque payloads of type T. It supports exact
// nearest-neighbour, bounded k-nearest-neighbour and radius queries.
//
// Internally it is a bucketed k-d tree: leaves hold up to a configured
// capacity of (point, item) pairs and are searched by linear scan; a leaf
// that overflows is split into an internal node routing on a single axis.
// Nodes live in a flat arena and reference children by index, so tree shape
// never involves recursive ownership.
//
// Mutation (Add, AddIfAbsent) is not thread-safe. Queries perform no
// mutation and may run concurrently from multiple readers provided no writer
// is active: a single-writer/multiple-reader contract enforced by the
// caller, not by the tree.
type Tree[F distance.Float, T any] struct {
	dims   int
	count  int
	opts   options
	logger *Logger

	// Node arena. nodes[0] is the root; children are referenced by index.
	nodes []node[F, T]
}

// node is a tagged arena entry: left < 0 marks a leaf bucket holding
// points/items, otherwise axis/split route to the left/right children.
type node[F distance.Float, T any] struct {
	axis        int
	split       F
	left, right int32
	points      [][]F
	items       []T
}

func (n *node[F, T]) leaf() bool { return n.left < 0 }

// New creates a point index for the given number of dimensions, which is
// fixed for the tree's lifetime. Construction fails fast on dimensions <= 0
// or an invalid option.
func New[F distance.Float, T any](dimensions int, optFns ...Option) (*Tree[F, T], error) {
	if dimensions <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimensions}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.bucketCapacity < 1 {
		return nil, &ErrInvalidBucketCapacity{Capacity: opts.bucketCapacity}
	}

	t := &Tree[F, T]{
		dims:   dimensions,
		opts:   opts,
		logger: opts.logger.WithDimension(dimensions),
	}
	t.nodes = append(t.nodes, node[F, T]{
		left:   -1,
		right:  -1,
		points: make([][]F, 0, opts.bucketCapacity),
		items:  make([]T, 0, opts.bucketCapacity),
	})

	return t, nil
}

// Dimensions returns the fixed dimension count set at construction.
func (t *Tree[F, T]) Dimensions() int { return t.dims }

// Size returns the current point count.
func (t *Tree[F, T]) Size() int { return t.count }

// Add inserts a point with its item unconditionally, including exact
// duplicates. The point is copied; later changes to the argument slice do
// not affect the tree. Fails fast if the point length does not match the
// tree dimensionality.
func (t *Tree[F, T]) Add(point []F, item T) error {
	if len(point) != t.dims {
		return &ErrDimensionMismatch{Expected: t.dims, Actual: len(point)}
	}
	t.insert(t.locate(point), slices.Clone(point), item)
	return nil
}

// AddIfAbsent inserts the point unless an existing point is coordinate-equal
// and reports whether an insertion happened. -0.0 and 0.0 compare equal; a
// point with a NaN coordinate never equals any stored point and is always
// inserted. Fails fast on a point length mismatch.
func (t *Tree[F, T]) AddIfAbsent(point []F, item T) (bool, error) {
	if len(point) != t.dims {
		return false, &ErrDimensionMismatch{Expected: t.dims, Actual: len(point)}
	}

	// Deterministic routing co-locates coordinate-equal points, so scanning
	// the destination bucket suffices.
	idx := t.locate(point)
	n := &t.nodes[idx]
	for _, p := range n.points {
		if coordsEqual(p, point) {
			return false, nil
		}
	}

	t.insert(idx, slices.Clone(point), item)
	return true, nil
}

// ForEach visits every (point, item) pair exactly once, in unspecified but
// stable-per-call order. The point slice is the tree's own storage and must
// not be modified by the visitor.
func (t *Tree[F, T]) ForEach(fn func(point []F, item T)) {
	for i := range t.nodes {
		n := &t.nodes[i]
		if !n.leaf() {
			continue
		}
		for j, p := range n.points {
			fn(p, n.items[j])
		}
	}
}

// locate descends from the root to the leaf bucket that owns point.
func (t *Tree[F, T]) locate(point []F) int32 {
	idx := int32(0)
	for {
		n := &t.nodes[idx]
		if n.leaf() {
			return idx
		}
		// NaN coordinates fail the comparison and route right, which keeps
		// routing deterministic for repeated inserts of the same point.
		if point[n.axis] <= n.split {
			idx = n.left
		} else {
			idx = n.right
		}
	}
}

func (t *Tree[F, T]) insert(idx int32, point []F, item T) {
	n := &t.nodes[idx]
	n.points = append(n.points, point)
	n.items = append(n.items, item)
	t.count++

	if len(n.points) > t.opts.bucketCapacity {
		t.splitLeaf(idx)
	}
}

// splitLeaf converts an overflowing leaf into an internal node with two leaf
// children. If every axis is degenerate (all points identical along all
// axes, a singularity) the leaf is left to exceed its capacity; the next
// overflowing insert retries, so a bucket made splittable by a later point
// splits then.
func (t *Tree[F, T]) splitLeaf(idx int32) {
	n := &t.nodes[idx]

	axis, split, ok := chooseSplit(n.points, t.dims)
	if !ok {
		t.logger.Debug("singular bucket exceeds capacity",
			"size", len(n.points),
			"capacity", t.opts.bucketCapacity,
		)
		return
	}

	capHint := t.opts.bucketCapacity
	left := node[F, T]{
		left:   -1,
		right:  -1,
		points: make([][]F, 0, capHint),
		items:  make([]T, 0, capHint),
	}
	right := node[F, T]{
		left:   -1,
		right:  -1,
		points: make([][]F, 0, capHint),
		items:  make([]T, 0, capHint),
	}

	for i, p := range n.points {
		if p[axis] <= split {
			left.points = append(left.points, p)
			left.items = append(left.items, n.items[i])
		} else {
			right.points = append(right.points, p)
			right.items = append(right.items, n.items[i])
		}
	}

	li := int32(len(t.nodes))
	ri := li + 1
	t.nodes = append(t.nodes, left, right)

	// Reacquire: the append above may have moved the arena.
	n = &t.nodes[idx]
	n.axis = axis
	n.split = split
	n.left = li
	n.right = ri
	n.points = nil
	n.items = nil

	t.logger.Debug("bucket split",
		"axis", axis,
		"left", len(t.nodes[li].points),
		"right", len(t.nodes[ri].points),
	)
}

// chooseSplit picks the axis of maximum spread and a midpoint split value.
// NaN coordinates are ignored when measuring spread. Returns ok=false when
// no axis has positive spread.
//
// Routing sends coord <= split left, so split must satisfy
// min <= split < max to guarantee both children are non-empty.
func chooseSplit[F distance.Float](points [][]F, dims int) (int, F, bool) {
	bestAxis := -1
	var bestSpread, bestMin, bestMax F

	for axis := 0; axis < dims; axis++ {
		var mn, mx F
		seen := false
		for _, p := range points {
			v := p[axis]
			if v != v {
				continue
			}
			if !seen {
				mn, mx, seen = v, v, true
				continue
			}
			if v < mn {
				mn = v
			}
			if v > mx {
				mx = v
			}
		}
		if !seen {
			continue
		}
		if spread := mx - mn; spread > bestSpread {
			bestAxis, bestSpread, bestMin, bestMax = axis, spread, mn, mx
		}
	}

	if bestAxis < 0 {
		return 0, 0, false
	}

	split := bestMin + (bestMax-bestMin)/2
	if !(split < bestMax) {
		// Midpoint rounded up to max (tiny or infinite spread); fall back to
		// min so the <= routing still separates the extremes.
		split = bestMin
	}

	return bestAxis, split, true
}

// coordsEqual reports exact coordinate equality. Float comparison makes
// -0.0 equal to 0.0 and NaN unequal to everything, including itself.
func coordsEqual[F distance.Float](a, b []F) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
