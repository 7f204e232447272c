package selection

// Float constrains the score precision. It mirrors distance.Float so the
// package stays usable independently of any tree.
type Float interface {
	~float32 | ~float64
}

// Heap is a bounded max-heap retaining the capacity smallest (score, item)
// pairs offered to it. The worst retained score sits at the root, which makes
// eviction and pruning checks O(1) and insertion O(log k).
//
// Heap is NOT thread-safe. It is intended to be owned by a single worker,
// e.g. one per goroutine in a parallel batch-query pipeline. Reusing one
// instance across independent selections (via Reset or Rebound) produces
// results identical to constructing a fresh one each time.
type Heap[F Float, T any] struct {
	capacity int
	scores   []F
	items    []T
}

// NewHeap creates a bounded heap retaining the capacity smallest candidates.
// A capacity below 1 is clamped to 1.
func NewHeap[F Float, T any](capacity int) *Heap[F, T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Heap[F, T]{
		capacity: capacity,
		scores:   make([]F, 0, capacity),
		items:    make([]T, 0, capacity),
	}
}

// Len returns the number of retained candidates.
func (h *Heap[F, T]) Len() int { return len(h.scores) }

// Cap returns the configured capacity.
func (h *Heap[F, T]) Cap() int { return h.capacity }

// Full reports whether the heap holds capacity candidates.
func (h *Heap[F, T]) Full() bool { return len(h.scores) == h.capacity }

// Worst returns the largest retained score. The second return value is false
// while the heap is empty.
func (h *Heap[F, T]) Worst() (F, bool) {
	if len(h.scores) == 0 {
		var zero F
		return zero, false
	}
	return h.scores[0], true
}

// Push offers a candidate and reports whether it was retained. NaN scores are
// always rejected. Once full, a candidate is retained only if it is strictly
// better than the current worst; the evicted pair is discarded.
func (h *Heap[F, T]) Push(score F, item T) bool {
	if score != score { // NaN never ranks
		return false
	}
	if len(h.scores) < h.capacity {
		h.scores = append(h.scores, score)
		h.items = append(h.items, item)
		h.siftUp(len(h.scores) - 1)
		return true
	}
	if !(score < h.scores[0]) {
		return false
	}
	h.scores[0] = score
	h.items[0] = item
	h.siftDown(0)
	return true
}

// Drain delivers all retained candidates in internal heap order and empties
// the heap. A nil consumer just empties it.
func (h *Heap[F, T]) Drain(fn func(item T, score F)) {
	if fn != nil {
		for i := range h.scores {
			fn(h.items[i], h.scores[i])
		}
	}
	h.Reset()
}

// DrainSorted delivers all retained candidates in strictly ascending score
// order and empties the heap. A nil consumer just empties it.
func (h *Heap[F, T]) DrainSorted(fn func(item T, score F)) {
	// In-place heapsort: repeatedly swap the worst to the end and shrink,
	// leaving the backing slices sorted ascending.
	n := len(h.scores)
	for end := n - 1; end > 0; end-- {
		h.scores[0], h.scores[end] = h.scores[end], h.scores[0]
		h.items[0], h.items[end] = h.items[end], h.items[0]
		h.siftDownBounded(0, end)
	}
	if fn != nil {
		for i := 0; i < n; i++ {
			fn(h.items[i], h.scores[i])
		}
	}
	h.Reset()
}

// Reset clears the heap for reuse without freeing the backing arrays.
func (h *Heap[F, T]) Reset() {
	clear(h.items) // drop payload references for GC
	h.scores = h.scores[:0]
	h.items = h.items[:0]
}

// Rebound resets the heap and changes its capacity, growing the backing
// arrays if needed. Used by callers that reuse one heap across queries with
// varying k.
func (h *Heap[F, T]) Rebound(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	h.Reset()
	if cap(h.scores) < capacity {
		h.scores = make([]F, 0, capacity)
		h.items = make([]T, 0, capacity)
	}
	h.capacity = capacity
}

func (h *Heap[F, T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !(h.scores[i] > h.scores[p]) {
			return
		}
		h.scores[i], h.scores[p] = h.scores[p], h.scores[i]
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[F, T]) siftDown(i int) {
	h.siftDownBounded(i, len(h.scores))
}

func (h *Heap[F, T]) siftDownBounded(i, n int) {
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		largest := l
		if r := l + 1; r < n && h.scores[r] > h.scores[l] {
			largest = r
		}
		if !(h.scores[largest] > h.scores[i]) {
			return
		}
		h.scores[i], h.scores[largest] = h.scores[largest], h.scores[i]
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
