package harness

import (
	"context"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiwaveperf/internal/metrics"
	"hiwaveperf/internal/render"
)

func newTestSuite(t *testing.T, iterations int) *Suite {
	t.Helper()
	dir := t.TempDir()
	writePage(t, dir, "a.html", "<html><body><p>alpha</p></body></html>")
	writePage(t, dir, "b.html", "<html><body><div><span>beta</span></div></body></html>")

	s, err := NewSuite(iterations, dir)
	require.NoError(t, err)
	return s
}

func TestNewSuiteValidation(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.html", "<html></html>")

	_, err := NewSuite(0, dir)
	assert.Error(t, err)

	_, err = NewSuite(-5, dir)
	assert.Error(t, err)

	// Empty corpus is fatal.
	_, err = NewSuite(10, t.TempDir())
	assert.Error(t, err)
}

func TestEnableRenderer(t *testing.T) {
	s := newTestSuite(t, 1)

	s.EnableRenderer("hiwave")
	s.EnableRenderer("HIWAVE") // idempotent, case-insensitive
	s.EnableRenderer("gecko")
	s.EnableRenderer("trident") // unknown, ignored

	assert.Equal(t, []render.Type{render.HiWave, render.Gecko}, s.EnabledRenderers())
}

func TestRunNoRenderers(t *testing.T) {
	s := newTestSuite(t, 1)
	_, err := s.Run(context.Background())
	assert.Error(t, err)
}

func TestRunCollectsSamples(t *testing.T) {
	s := newTestSuite(t, 120)
	s.EnableRenderer("hiwave")

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, result.Platform)
	assert.Equal(t, 120, result.Iterations)
	assert.NotEmpty(t, result.GitCommit)
	assert.False(t, result.Timestamp.IsZero())
	assert.GreaterOrEqual(t, result.TotalDurationSecs, 0.0)
	assert.Empty(t, result.Regressions)
	assert.Nil(t, result.BaselineComparison)

	require.Contains(t, result.Renderers, "hiwave")
	bs := result.Renderers["hiwave"]
	assert.GreaterOrEqual(t, bs.TotalTime.Mean, bs.ParseTime.Mean)
	assert.GreaterOrEqual(t, bs.TotalTime.Max, bs.TotalTime.P99)
	assert.GreaterOrEqual(t, bs.TotalTime.P99, bs.TotalTime.P95)
	assert.Greater(t, bs.Memory.Mean, 0.0)
}

func TestRunWithMetrics(t *testing.T) {
	s := newTestSuite(t, 3)
	s.EnableRenderer("hiwave")
	s.SetMetrics(metrics.New())

	_, err := s.Run(context.Background())
	assert.NoError(t, err)
}

func TestRunAbortsOnUnavailableRenderer(t *testing.T) {
	s := newTestSuite(t, 2)
	s.EnableRenderer("hiwave")
	s.EnableRenderer("blink") // fails at construction on every platform

	_, err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrUnavailable)
}

func TestRunCanceledContext(t *testing.T) {
	s := newTestSuite(t, 10)
	s.EnableRenderer("hiwave")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomViewportStaysOnMenu(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	menu := Viewports()
	for i := 0; i < 200; i++ {
		assert.Contains(t, menu, randomViewport(rng))
	}
}
