// Package engine provides a parallel batch-query pipeline over a kdgo tree.
//
// Tree queries are synchronous and single-threaded per call; the engine fans
// a batch of queries over a bounded worker pool, giving each worker its own
// reusable bounded candidate heap. This is safe because queries never mutate
// the tree: the engine relies on the tree's single-writer/multiple-reader
// contract, so no writer may run while a batch is in flight.
package engine
