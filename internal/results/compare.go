package results

import "sort"

// CompareWithBaseline diffs the receiver against a stored baseline document.
// Renderers present in only one of the two runs are skipped. Each threshold is
// checked independently, so one renderer can contribute up to two entries.
// Emitted entries are appended to both the returned comparison and the
// receiver's regression list, and the comparison is recorded on the receiver
// so a subsequent Save retains the findings.
func (r *RunResult) CompareWithBaseline(baselinePath string) (*BaselineComparison, error) {
	baseline, err := Load(baselinePath)
	if err != nil {
		return nil, err
	}

	comparison := &BaselineComparison{
		BaselineCommit:    baseline.GitCommit,
		BaselineTimestamp: baseline.Timestamp,
		Improvements:      []Regression{},
		Regressions:       []Regression{},
	}

	names := make([]string, 0, len(r.Renderers))
	for name := range r.Renderers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		current := r.Renderers[name]
		base, ok := baseline.Renderers[name]
		if !ok {
			continue
		}

		timeChange := percentChange(base.TotalTime.Mean, current.TotalTime.Mean)
		if timeChange > TimeRegressionThreshold {
			reg := Regression{
				Renderer:      name,
				Metric:        MetricTotalTime,
				BaselineValue: base.TotalTime.Mean,
				CurrentValue:  current.TotalTime.Mean,
				PercentChange: timeChange,
			}
			comparison.Regressions = append(comparison.Regressions, reg)
			r.Regressions = append(r.Regressions, reg)
		}

		memChange := percentChange(base.Memory.Mean, current.Memory.Mean)
		if memChange > MemoryRegressionThreshold {
			reg := Regression{
				Renderer:      name,
				Metric:        MetricMemory,
				BaselineValue: base.Memory.Mean,
				CurrentValue:  current.Memory.Mean,
				PercentChange: memChange,
			}
			comparison.Regressions = append(comparison.Regressions, reg)
			r.Regressions = append(r.Regressions, reg)
		}
	}

	r.BaselineComparison = comparison
	return comparison, nil
}

func percentChange(base, current float64) float64 {
	return (current - base) / base * 100
}
