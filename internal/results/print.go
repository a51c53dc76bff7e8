package results

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"hiwaveperf/internal/stats"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	rendererStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	regressionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// PrintSummary writes a human-readable report of the run to w.
func (r *RunResult) PrintSummary(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render("Performance Test Results"))
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Platform:"), r.Platform)
	fmt.Fprintf(w, "%s %d\n", dimStyle.Render("Iterations:"), r.Iterations)
	fmt.Fprintf(w, "%s %.2fs\n", dimStyle.Render("Duration:"), r.TotalDurationSecs)
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Git Commit:"), r.GitCommit)
	fmt.Fprintln(w)

	names := make([]string, 0, len(r.Renderers))
	for name := range r.Renderers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintln(w, rendererStyle.Render("Renderer: "+name))
		printBackendStats(w, r.Renderers[name])
		fmt.Fprintln(w)
	}

	if len(r.Regressions) > 0 {
		fmt.Fprintln(w, regressionStyle.Render("REGRESSIONS DETECTED"))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RENDERER\tMETRIC\tBASELINE\tCURRENT\tCHANGE")
		for _, reg := range r.Regressions {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%+.2f%%\n",
				reg.Renderer, reg.Metric, reg.BaselineValue, reg.CurrentValue, reg.PercentChange)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}

func printBackendStats(w io.Writer, bs stats.BackendStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tMEAN\tMEDIAN\tSTDDEV\tMIN\tMAX\tP95\tP99")
	printSummaryRow(tw, "parse (ms)", bs.ParseTime)
	printSummaryRow(tw, "layout (ms)", bs.LayoutTime)
	printSummaryRow(tw, "paint (ms)", bs.PaintTime)
	printSummaryRow(tw, "total (ms)", bs.TotalTime)
	printSummaryRow(tw, "memory (MB)", bs.Memory)
	tw.Flush()
}

func printSummaryRow(w io.Writer, label string, s stats.Summary) {
	fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
		label, s.Mean, s.Median, s.StdDev, s.Min, s.Max, s.P95, s.P99)
}
