package results

import (
	"time"

	"hiwaveperf/internal/stats"
)

// Metric names used in regression entries.
const (
	MetricTotalTime = "total_time_ms"
	MetricMemory    = "memory_mb"
)

// Regression thresholds, in percent change against the baseline mean.
const (
	TimeRegressionThreshold   = 5.0
	MemoryRegressionThreshold = 15.0
)

// Regression records one metric of one renderer exceeding its threshold
// against the baseline. PercentChange is signed; positive means the current
// run is slower or larger.
type Regression struct {
	Renderer      string  `json:"renderer"`
	Metric        string  `json:"metric"`
	BaselineValue float64 `json:"baseline_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
}

// BaselineComparison identifies the reference run and the findings against
// it. Improvements is structurally present but never populated: the harness
// flags regressions only, it does not detect "got faster".
type BaselineComparison struct {
	BaselineCommit    string       `json:"baseline_commit"`
	BaselineTimestamp time.Time    `json:"baseline_timestamp"`
	Improvements      []Regression `json:"improvements"`
	Regressions       []Regression `json:"regressions"`
}

// RunResult is the root document persisted after a run.
type RunResult struct {
	Platform           string                        `json:"platform"`
	Timestamp          time.Time                     `json:"timestamp"`
	GitCommit          string                        `json:"git_commit"`
	Iterations         int                           `json:"iterations"`
	TotalDurationSecs  float64                       `json:"total_duration_secs"`
	Renderers          map[string]stats.BackendStats `json:"renderers"`
	Regressions        []Regression                  `json:"regressions"`
	BaselineComparison *BaselineComparison           `json:"baseline_comparison,omitempty"`
}
