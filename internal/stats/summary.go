package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptySeries is returned when a summary is requested over zero values.
var ErrEmptySeries = errors.New("cannot summarize an empty series")

// Summary describes the distribution of one metric across a run.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
}

// NewSummary computes a distribution summary over values. The input slice is
// not modified. The standard deviation uses the population formula (divisor n);
// WelchTTest is the one place that uses sample variance instead.
func NewSummary(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySeries
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return Summary{
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(variance),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P95:    sorted[percentileIndex(n, 0.95)],
		P99:    sorted[percentileIndex(n, 0.99)],
	}, nil
}

// percentileIndex is the nearest-rank index floor(n*q) clamped to [0, n-1].
// No interpolation between adjacent ranks.
func percentileIndex(n int, q float64) int {
	idx := int(float64(n) * q)
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}
