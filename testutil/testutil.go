// Package testutil provides deterministic helpers for kdgo tests: a seeded
// thread-safe RNG and brute-force reference implementations that tree
// queries are checked against.
package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// Float mirrors distance.Float so helpers work for both precisions.
type Float interface {
	~float32 | ~float64
}

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed pseudo-random number.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// RandomPoints generates n points of the given dimensionality with
// coordinates uniform in [0, scale).
func RandomPoints[F Float](r *RNG, n, dims int, scale float64) [][]F {
	points := make([][]F, n)
	for i := range points {
		p := make([]F, dims)
		for j := range p {
			p[j] = F(r.Float64() * scale)
		}
		points[i] = p
	}
	return points
}

// BruteForceNearest scans all points exhaustively and returns the index and
// distance of the nearest valid candidate. The index is -1 when no distance
// is valid (all NaN or the set is empty).
func BruteForceNearest[F Float](points [][]F, query []F, distFn func(a, b []F) F) (int, F) {
	best := -1
	var bestDist F
	for i, p := range points {
		d := distFn(query, p)
		if d != d {
			continue
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}

// BruteForceKNNDistances returns the k smallest valid distances from query
// to points, sorted ascending.
func BruteForceKNNDistances[F Float](points [][]F, query []F, k int, distFn func(a, b []F) F) []F {
	dists := make([]F, 0, len(points))
	for _, p := range points {
		if d := distFn(query, p); d == d {
			dists = append(dists, d)
		}
	}
	slices.Sort(dists)
	if k < len(dists) {
		dists = dists[:k]
	}
	return dists
}

// BruteForceRange returns the indexes of all points within radius of query,
// in input order.
func BruteForceRange[F Float](points [][]F, query []F, radius F, distFn func(a, b []F) F) []int {
	var out []int
	for i, p := range points {
		if d := distFn(query, p); d <= radius {
			out = append(out, i)
		}
	}
	return out
}
