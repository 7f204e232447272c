package distance

import "fmt"

// Float constrains the coordinate precision of a point. Trees and selection
// utilities are instantiated per precision; float64 is the common choice for
// localization data, float32 halves memory for large datasets.
type Float interface {
	~float32 | ~float64
}

// Func computes a score between two equal-length points. A NaN result marks
// the pair as incomparable; tree queries exclude such candidates instead of
// ranking them.
type Func[F Float] func(a, b []F) F

// SquaredEuclidean calculates the squared L2 distance between two points.
// Assumes points are the same length (caller's responsibility).
// A NaN coordinate in either point propagates to the result.
func SquaredEuclidean[F Float](a, b []F) F {
	var sum F
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan calculates the L1 distance between two points.
// Assumes points are the same length (caller's responsibility).
func Manhattan[F Float](a, b []F) F {
	var sum F
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Chebyshev calculates the L∞ distance between two points.
// Assumes points are the same length (caller's responsibility).
// Unlike the additive metrics, the max scan would silently skip NaN
// differences, so NaN is checked explicitly to keep exclusion semantics.
func Chebyshev[F Float](a, b []F) F {
	var max F
	for i := range a {
		d := a[i] - b[i]
		if d != d {
			return d
		}
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricSquaredEuclidean Metric = iota
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider[F Float](m Metric) (Func[F], error) {
	switch m {
	case MetricSquaredEuclidean:
		return SquaredEuclidean[F], nil
	case MetricManhattan:
		return Manhattan[F], nil
	case MetricChebyshev:
		return Chebyshev[F], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
