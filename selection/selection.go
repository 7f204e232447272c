package selection

import "slices"

// Bottom returns the n smallest non-NaN values of vs, sorted ascending.
// If n >= len(vs) after NaN exclusion, the full remaining input is returned
// sorted ascending. The input slice is never modified.
func Bottom[F Float](vs []F, n int) []F {
	out := compact(vs)
	if n <= 0 {
		return out[:0]
	}
	if n >= len(out) {
		slices.Sort(out)
		return out
	}
	selectKth(out, n-1)
	out = out[:n]
	slices.Sort(out)
	return out
}

// Top returns the n largest non-NaN values of vs, sorted descending.
// If n >= len(vs) after NaN exclusion, the full remaining input is returned
// sorted descending. The input slice is never modified.
func Top[F Float](vs []F, n int) []F {
	out := compact(vs)
	if n <= 0 {
		return out[:0]
	}
	if n >= len(out) {
		slices.Sort(out)
		reverse(out)
		return out
	}
	selectKth(out, len(out)-n)
	out = out[len(out)-n:]
	slices.Sort(out)
	reverse(out)
	return out
}

// BottomHeadFirst returns the n smallest non-NaN values with the boundary
// (n-th smallest) as the first element and the remainder in unspecified
// order. This lets callers run a threshold check against the boundary before
// touching the rest. If n >= len(vs) the full input is returned sorted
// ascending, as in Bottom.
func BottomHeadFirst[F Float](vs []F, n int) []F {
	out := compact(vs)
	if n <= 0 {
		return out[:0]
	}
	if n >= len(out) {
		slices.Sort(out)
		return out
	}
	selectKth(out, n-1)
	out = out[:n]
	out[0], out[n-1] = out[n-1], out[0]
	return out
}

// TopHeadFirst returns the n largest non-NaN values with the boundary (n-th
// largest) as the first element and the remainder in unspecified order.
// If n >= len(vs) the full input is returned sorted descending, as in Top.
func TopHeadFirst[F Float](vs []F, n int) []F {
	out := compact(vs)
	if n <= 0 {
		return out[:0]
	}
	if n >= len(out) {
		slices.Sort(out)
		reverse(out)
		return out
	}
	selectKth(out, len(out)-n)
	return out[len(out)-n:]
}

// compact returns a copy of vs with NaN values removed.
func compact[F Float](vs []F) []F {
	out := make([]F, 0, len(vs))
	for _, v := range vs {
		if v == v {
			out = append(out, v)
		}
	}
	return out
}

func reverse[F Float](vs []F) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// selectKth partially orders vs in place so that vs[k] holds the k-th
// smallest value, everything before it is <= vs[k] and everything after it
// is >= vs[k]. Standard quickselect with median-of-three pivoting; vs must
// be NaN-free.
func selectKth[F Float](vs []F, k int) {
	lo, hi := 0, len(vs)-1
	for lo < hi {
		p := partition(vs, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

func partition[F Float](vs []F, lo, hi int) int {
	// Median-of-three: order lo/mid/hi, then use mid as pivot parked at hi-1.
	mid := lo + (hi-lo)/2
	if vs[mid] < vs[lo] {
		vs[mid], vs[lo] = vs[lo], vs[mid]
	}
	if vs[hi] < vs[lo] {
		vs[hi], vs[lo] = vs[lo], vs[hi]
	}
	if vs[hi] < vs[mid] {
		vs[hi], vs[mid] = vs[mid], vs[hi]
	}
	if hi-lo < 3 {
		return mid
	}
	vs[mid], vs[hi-1] = vs[hi-1], vs[mid]
	pivot := vs[hi-1]
	i := lo
	for j := lo; j < hi-1; j++ {
		if vs[j] < pivot {
			vs[i], vs[j] = vs[j], vs[i]
			i++
		}
	}
	vs[i], vs[hi-1] = vs[hi-1], vs[i]
	return i
}
