package harness

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"hiwaveperf/internal/gitutils"
	"hiwaveperf/internal/metrics"
	"hiwaveperf/internal/render"
	"hiwaveperf/internal/results"
	"hiwaveperf/internal/stats"
)

// progressInterval is how many iterations pass between progress reports.
const progressInterval = 100

// Suite drives the Monte Carlo measurement loop: N independent trials, each
// drawing a random (page, viewport) pair and measuring every enabled renderer
// against it with a fresh engine instance.
type Suite struct {
	iterations int
	pages      []TestPage
	renderers  []render.Type
	metrics    *metrics.Metrics
	rng        *rand.Rand
}

// NewSuite loads the corpus from pagesDir and prepares a suite. An empty
// corpus is a fatal setup error.
func NewSuite(iterations int, pagesDir string) (*Suite, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("iteration count must be at least 1, got %d", iterations)
	}

	pages, err := LoadPages(pagesDir)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no test pages found in %s", pagesDir)
	}
	slog.Info("loaded test pages", "count", len(pages), "dir", pagesDir)

	return &Suite{
		iterations: iterations,
		pages:      pages,
		// Deliberately wall-clock seeded: run-to-run reproducibility of the
		// draw sequence is a non-goal.
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetMetrics attaches Prometheus instrumentation. A nil receiver field just
// disables the side-channel.
func (s *Suite) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// EnableRenderer adds a renderer to the run by name. Enabling the same name
// twice is a no-op; unknown names are logged and ignored. Enable order is kept
// for reporting.
func (s *Suite) EnableRenderer(name string) {
	t, err := render.ParseType(name)
	if err != nil {
		slog.Warn("unknown renderer, ignoring", "name", name)
		return
	}
	for _, enabled := range s.renderers {
		if enabled == t {
			return
		}
	}
	s.renderers = append(s.renderers, t)
}

// EnabledRenderers returns the renderers in enable order.
func (s *Suite) EnabledRenderers() []render.Type {
	out := make([]render.Type, len(s.renderers))
	copy(out, s.renderers)
	return out
}

// Run executes the configured number of iterations and aggregates the
// collected samples into a result document. Any engine failure mid-run aborts
// the whole run.
func (s *Suite) Run(ctx context.Context) (*results.RunResult, error) {
	if len(s.renderers) == 0 {
		return nil, fmt.Errorf("no renderers enabled")
	}

	start := time.Now()
	samples := make(map[string][]stats.Sample, len(s.renderers))
	for _, t := range s.renderers {
		samples[t.String()] = nil
	}

	slog.Info("starting iterations", "count", s.iterations)

	for i := 0; i < s.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run canceled after %d iterations: %w", i, err)
		}
		if i%progressInterval == 0 && i > 0 {
			slog.Info("progress", "done", i, "total", s.iterations)
		}
		if s.metrics != nil {
			s.metrics.CurrentIteration.Set(float64(i))
		}

		page := &s.pages[s.rng.Intn(len(s.pages))]
		viewport := randomViewport(s.rng)

		slog.Debug("iteration",
			"i", i, "page", page.Name,
			"viewport", fmt.Sprintf("%dx%d", viewport.Width, viewport.Height))

		for _, t := range s.renderers {
			sample, err := s.measureRender(t, page, viewport)
			if err != nil {
				return nil, fmt.Errorf("iteration %d, renderer %s: %w", i, t, err)
			}
			samples[t.String()] = append(samples[t.String()], sample)
			if s.metrics != nil {
				s.metrics.SamplesCollected.WithLabelValues(t.String()).Inc()
			}
		}

		if s.metrics != nil {
			s.metrics.IterationsCompleted.Inc()
		}
	}

	renderers := make(map[string]stats.BackendStats, len(samples))
	for name, list := range samples {
		bs, err := stats.NewBackendStats(list)
		if err != nil {
			return nil, fmt.Errorf("aggregating %s: %w", name, err)
		}
		renderers[name] = bs
	}

	return &results.RunResult{
		Platform:          runtime.GOOS,
		Timestamp:         time.Now().UTC(),
		GitCommit:         gitutils.ShortCommit(),
		Iterations:        s.iterations,
		TotalDurationSecs: time.Since(start).Seconds(),
		Renderers:         renderers,
		Regressions:       []results.Regression{},
	}, nil
}

// measureRender runs one timed parse/layout/paint sequence against a fresh
// engine instance and reads memory once after paint. The instance is discarded
// afterwards, so iterations cannot interfere with each other.
func (s *Suite) measureRender(t render.Type, page *TestPage, viewport Viewport) (stats.Sample, error) {
	engine, err := render.New(t)
	if err != nil {
		return stats.Sample{}, err
	}

	start := time.Now()

	parseStart := time.Now()
	if err := engine.ParseMarkup(page.HTML); err != nil {
		return stats.Sample{}, fmt.Errorf("parse failed: %w", err)
	}
	parseTime := time.Since(parseStart)

	layoutStart := time.Now()
	if err := engine.ComputeLayout(viewport.Width, viewport.Height); err != nil {
		return stats.Sample{}, fmt.Errorf("layout failed: %w", err)
	}
	layoutTime := time.Since(layoutStart)

	paintStart := time.Now()
	if err := engine.Paint(); err != nil {
		return stats.Sample{}, fmt.Errorf("paint failed: %w", err)
	}
	paintTime := time.Since(paintStart)

	totalTime := time.Since(start)
	memoryBytes := engine.MemoryUsage()

	if s.metrics != nil {
		s.metrics.PhaseDuration.WithLabelValues(t.String(), "parse").Observe(parseTime.Seconds())
		s.metrics.PhaseDuration.WithLabelValues(t.String(), "layout").Observe(layoutTime.Seconds())
		s.metrics.PhaseDuration.WithLabelValues(t.String(), "paint").Observe(paintTime.Seconds())
	}

	return stats.Sample{
		ParseTimeMs:  parseTime.Seconds() * 1000,
		LayoutTimeMs: layoutTime.Seconds() * 1000,
		PaintTimeMs:  paintTime.Seconds() * 1000,
		TotalTimeMs:  totalTime.Seconds() * 1000,
		MemoryMB:     float64(memoryBytes) / (1 << 20),
	}, nil
}
