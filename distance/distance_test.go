package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Diagonal", []float64{0, 0}, []float64{1, 1}, 2}, // squared, not sqrt(2)
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredEuclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	t.Run("NaNPropagates", func(t *testing.T) {
		got := SquaredEuclidean([]float64{math.NaN(), 0}, []float64{1, 2})
		assert.True(t, math.IsNaN(got))
	})

	t.Run("Float32", func(t *testing.T) {
		got := SquaredEuclidean([]float32{0, 0}, []float32{1, 1})
		assert.InDelta(t, float32(2), got, 1e-6)
	})
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 9},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 4},
		{"Identical", []float64{7, 7}, []float64{7, 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Manhattan(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	t.Run("NaNPropagates", func(t *testing.T) {
		got := Manhattan([]float64{math.NaN()}, []float64{1})
		assert.True(t, math.IsNaN(got))
	})
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 3},
		{"Dominant", []float64{0, 0}, []float64{1, 10}, 10},
		{"Identical", []float64{1, 1}, []float64{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chebyshev(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	t.Run("NaNPropagates", func(t *testing.T) {
		got := Chebyshev([]float64{0, math.NaN()}, []float64{100, 1})
		assert.True(t, math.IsNaN(got))
	})
}

func TestProvider(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		for _, m := range []Metric{MetricSquaredEuclidean, MetricManhattan, MetricChebyshev} {
			fn, err := Provider[float64](m)
			require.NoError(t, err)
			require.NotNil(t, fn)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Provider[float64](Metric(99))
		assert.Error(t, err)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})
}
