package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummaryEmpty(t *testing.T) {
	_, err := NewSummary(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = NewSummary([]float64{})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNewSummaryConstantSeries(t *testing.T) {
	s, err := NewSummary([]float64{7.5, 7.5, 7.5, 7.5, 7.5})
	require.NoError(t, err)

	assert.Equal(t, 7.5, s.Mean)
	assert.Equal(t, 7.5, s.Median)
	assert.Equal(t, 7.5, s.Min)
	assert.Equal(t, 7.5, s.Max)
	assert.Equal(t, 7.5, s.P95)
	assert.Equal(t, 7.5, s.P99)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestNewSummaryKnownValues(t *testing.T) {
	s, err := NewSummary([]float64{10.0, 20.0, 15.0})
	require.NoError(t, err)

	assert.Equal(t, 15.0, s.Mean)
	assert.Equal(t, 15.0, s.Median)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 20.0, s.Max)
	// Population variance: ((10-15)^2 + (20-15)^2 + 0) / 3 = 50/3
	assert.InDelta(t, math.Sqrt(50.0/3.0), s.StdDev, 1e-12)
	// Nearest rank for n=3: floor(3*0.95) = 2, the maximum
	assert.Equal(t, 20.0, s.P95)
	assert.Equal(t, 20.0, s.P99)
}

func TestNewSummaryEvenMedian(t *testing.T) {
	s, err := NewSummary([]float64{4.0, 1.0, 3.0, 2.0})
	require.NoError(t, err)
	assert.Equal(t, 2.5, s.Median)
}

func TestPercentileNearestRank(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1) // 1..100
	}
	s, err := NewSummary(values)
	require.NoError(t, err)

	// floor(100*0.95) = 95 (0-based) selects the 96th smallest value.
	assert.Equal(t, 96.0, s.P95)
	assert.Equal(t, 100.0, s.P99)
}

func TestNewSummaryDoesNotMutateInput(t *testing.T) {
	values := []float64{3.0, 1.0, 2.0}
	_, err := NewSummary(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.0, 1.0, 2.0}, values)
}

func TestNewSummaryOrderInsensitive(t *testing.T) {
	values := []float64{12.5, 3.25, 99.0, 0.5, 42.0, 42.0, 7.0}
	want, err := NewSummary(values)
	require.NoError(t, err)

	shuffled := make([]float64, len(values))
	copy(shuffled, values)
	for i := 0; i < 10; i++ {
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := NewSummary(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
