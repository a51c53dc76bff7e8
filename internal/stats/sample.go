package stats

// Sample holds the measurements taken for a single render of one test page by
// one engine: per-phase wall times plus memory read once after paint.
type Sample struct {
	ParseTimeMs  float64 `json:"parse_time_ms"`
	LayoutTimeMs float64 `json:"layout_time_ms"`
	PaintTimeMs  float64 `json:"paint_time_ms"`
	TotalTimeMs  float64 `json:"total_time_ms"`
	MemoryMB     float64 `json:"memory_mb"`
}
