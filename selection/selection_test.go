package selection

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBottom(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		n        int
		expected []float64
	}{
		{"Simple", []float64{5, 4, 3, 2, 1}, 3, []float64{1, 2, 3}},
		{"AllRequested", []float64{5, 4, 3, 2, 1}, 5, []float64{1, 2, 3, 4, 5}},
		{"MoreThanAvailable", []float64{3, 1, 2}, 10, []float64{1, 2, 3}},
		{"Duplicates", []float64{2, 2, 1, 2, 1}, 3, []float64{1, 1, 2}},
		{"Single", []float64{9, -1, 4}, 1, []float64{-1}},
		{"ZeroN", []float64{1, 2, 3}, 0, []float64{}},
		{"NegativeN", []float64{1, 2, 3}, -2, []float64{}},
		{"Empty", []float64{}, 3, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bottom(tt.values, tt.n)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("NaNDropped", func(t *testing.T) {
		got := Bottom([]float64{math.NaN(), 2, math.NaN(), 1}, 3)
		assert.Equal(t, []float64{1, 2}, got)
	})

	t.Run("NaNOnly", func(t *testing.T) {
		got := Bottom([]float64{math.NaN(), math.NaN()}, 1)
		assert.Empty(t, got)
	})

	t.Run("InputUnmodified", func(t *testing.T) {
		in := []float64{5, 4, 3, 2, 1}
		_ = Bottom(in, 2)
		assert.Equal(t, []float64{5, 4, 3, 2, 1}, in)
	})
}

func TestTop(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		n        int
		expected []float64
	}{
		{"Simple", []float64{5, 4, 3, 2, 1}, 3, []float64{5, 4, 3}},
		{"AllRequested", []float64{1, 3, 2}, 3, []float64{3, 2, 1}},
		{"MoreThanAvailable", []float64{1, 3, 2}, 7, []float64{3, 2, 1}},
		{"Single", []float64{9, -1, 4}, 1, []float64{9}},
		{"ZeroN", []float64{1, 2, 3}, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Top(tt.values, tt.n)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("NaNDropped", func(t *testing.T) {
		got := Top([]float64{1, math.NaN(), 5, 3}, 2)
		assert.Equal(t, []float64{5, 3}, got)
	})
}

func TestBottomHeadFirst(t *testing.T) {
	t.Run("BoundaryFirst", func(t *testing.T) {
		got := BottomHeadFirst([]float64{5, 4, 3, 2, 1}, 3)
		require.Len(t, got, 3)
		assert.Equal(t, float64(3), got[0]) // boundary: 3rd smallest

		sort.Float64s(got)
		assert.Equal(t, []float64{1, 2, 3}, got)
	})

	t.Run("MoreThanAvailable", func(t *testing.T) {
		got := BottomHeadFirst([]float64{3, 1, 2}, 5)
		assert.Equal(t, []float64{1, 2, 3}, got)
	})

	t.Run("NaNDropped", func(t *testing.T) {
		got := BottomHeadFirst([]float64{math.NaN(), 4, 2, 8}, 2)
		require.Len(t, got, 2)
		assert.Equal(t, float64(4), got[0])
	})
}

func TestTopHeadFirst(t *testing.T) {
	t.Run("BoundaryFirst", func(t *testing.T) {
		got := TopHeadFirst([]float64{5, 4, 3, 2, 1}, 3)
		require.Len(t, got, 3)
		assert.Equal(t, float64(3), got[0]) // boundary: 3rd largest

		sort.Float64s(got)
		assert.Equal(t, []float64{3, 4, 5}, got)
	})

	t.Run("MoreThanAvailable", func(t *testing.T) {
		got := TopHeadFirst([]float64{3, 1, 2}, 4)
		assert.Equal(t, []float64{3, 2, 1}, got)
	})
}

func TestSelectionAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		values := make([]float64, 1+rng.Intn(200))
		for i := range values {
			values[i] = rng.NormFloat64() * 100
		}
		n := 1 + rng.Intn(len(values))

		ref := append([]float64(nil), values...)
		sort.Float64s(ref)

		assert.Equal(t, ref[:n], Bottom(values, n))

		top := Top(values, n)
		for i, v := range top {
			assert.Equal(t, ref[len(ref)-1-i], v)
		}

		head := BottomHeadFirst(values, n)
		require.Len(t, head, n)
		assert.Equal(t, ref[n-1], head[0])
	}
}

func TestSelectionFloat32(t *testing.T) {
	got := Bottom([]float32{5, 4, 3, 2, 1}, 2)
	assert.Equal(t, []float32{1, 2}, got)
}
