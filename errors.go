package kdgo

import "fmt"

// ErrInvalidDimension indicates an invalid configured dimension count.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidBucketCapacity indicates an invalid configured bucket capacity.
type ErrInvalidBucketCapacity struct {
	Capacity int
}

func (e *ErrInvalidBucketCapacity) Error() string {
	return fmt.Sprintf("invalid bucket capacity: %d", e.Capacity)
}

// ErrDimensionMismatch indicates a point/tree dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
