// Package kdgo provides an in-process multidimensional point index for Go.
//
// kdgo is a bucketed k-d tree over dynamically growing point sets, built for
// spatial analysis of scientific point data (e.g. localization coordinates)
// where datasets contain coincident points and NaN coordinates. It supports
// exact nearest-neighbour, bounded k-nearest-neighbour and radius queries
// with push-style result delivery, avoiding intermediate result slices at
// high query volume.
//
// # Quick Start
//
//	tree, err := kdgo.New[float64, string](2)
//	if err != nil {
//	    panic(err)
//	}
//
//	_ = tree.Add([]float64{0, 0}, "origin")
//	_ = tree.Add([]float64{1, 1}, "corner")
//
//	// Squared-distance convention: (0,0)→(1,1) scores 2, not sqrt(2).
//	d := tree.NearestNeighbour([]float64{0.2, 0.1}, distance.SquaredEuclidean, nil,
//	    func(item string, dist float64) {
//	        fmt.Println(item, dist)
//	    })
//
//	tree.NearestNeighbours(query, 10, distance.SquaredEuclidean,
//	    &kdgo.QueryOptions[float64, string]{Sorted: true},
//	    func(item string, dist float64) {
//	        process(item, dist)
//	    })
//
// # Semantics
//
//   - Degenerate queries (empty tree, k <= 0, no valid candidate) report
//     "no result" via return values; queries never panic on NaN input.
//   - NaN distances are excluded from every result set, and pruning is
//     conservative under NaN: a NaN comparison descends rather than skips.
//   - AddIfAbsent treats -0.0 and 0.0 as equal coordinates.
//   - Buckets of identical points (a singularity) grow past capacity instead
//     of splitting forever.
//
// Mutation is single-writer; concurrent readers are safe only while no
// writer is active. See the selection package for the bounded candidate
// heap and standalone top-N/bottom-N utilities, and the engine package for
// a parallel batch-query pipeline.
package kdgo
