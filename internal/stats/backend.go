package stats

// BackendStats carries one distribution summary per measured dimension for a
// single engine over a single run.
type BackendStats struct {
	ParseTime  Summary `json:"parse_time"`
	LayoutTime Summary `json:"layout_time"`
	PaintTime  Summary `json:"paint_time"`
	TotalTime  Summary `json:"total_time"`
	Memory     Summary `json:"memory"`
}

// NewBackendStats aggregates the samples collected for one engine. Each
// dimension is summarized independently; the result depends only on the sample
// multiset, not on collection order.
func NewBackendStats(samples []Sample) (BackendStats, error) {
	parse := make([]float64, len(samples))
	layout := make([]float64, len(samples))
	paint := make([]float64, len(samples))
	total := make([]float64, len(samples))
	memory := make([]float64, len(samples))
	for i, s := range samples {
		parse[i] = s.ParseTimeMs
		layout[i] = s.LayoutTimeMs
		paint[i] = s.PaintTimeMs
		total[i] = s.TotalTimeMs
		memory[i] = s.MemoryMB
	}

	var (
		bs  BackendStats
		err error
	)
	if bs.ParseTime, err = NewSummary(parse); err != nil {
		return BackendStats{}, err
	}
	if bs.LayoutTime, err = NewSummary(layout); err != nil {
		return BackendStats{}, err
	}
	if bs.PaintTime, err = NewSummary(paint); err != nil {
		return BackendStats{}, err
	}
	if bs.TotalTime, err = NewSummary(total); err != nil {
		return BackendStats{}, err
	}
	if bs.Memory, err = NewSummary(memory); err != nil {
		return BackendStats{}, err
	}
	return bs, nil
}
