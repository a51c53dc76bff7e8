package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSamples() []Sample {
	return []Sample{
		{ParseTimeMs: 10.0, LayoutTimeMs: 20.0, PaintTimeMs: 15.0, TotalTimeMs: 45.0, MemoryMB: 50.0},
		{ParseTimeMs: 12.0, LayoutTimeMs: 22.0, PaintTimeMs: 16.0, TotalTimeMs: 50.0, MemoryMB: 52.0},
		{ParseTimeMs: 11.0, LayoutTimeMs: 21.0, PaintTimeMs: 15.5, TotalTimeMs: 47.5, MemoryMB: 51.0},
	}
}

func TestNewBackendStats(t *testing.T) {
	bs, err := NewBackendStats(testSamples())
	require.NoError(t, err)

	assert.Equal(t, 11.0, bs.ParseTime.Mean)
	assert.Equal(t, 21.0, bs.LayoutTime.Median)
	assert.Equal(t, 16.0, bs.PaintTime.Max)
	assert.InDelta(t, 47.5, bs.TotalTime.Mean, 1e-12)
	assert.Equal(t, 50.0, bs.Memory.Min)
}

func TestNewBackendStatsEmpty(t *testing.T) {
	_, err := NewBackendStats(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNewBackendStatsOrderInsensitive(t *testing.T) {
	samples := testSamples()
	want, err := NewBackendStats(samples)
	require.NoError(t, err)

	reversed := []Sample{samples[2], samples[1], samples[0]}
	got, err := NewBackendStats(reversed)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}
