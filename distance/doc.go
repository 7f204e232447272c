// Package distance provides distance functions for multidimensional point
// queries.
//
// All tree queries in kdgo follow the squared-distance convention:
// SquaredEuclidean omits the final square root so that hot-path comparisons
// stay monotone without paying for math.Sqrt. Callers supplying their own
// metric only need per-axis monotonicity, not true metric axioms.
package distance
