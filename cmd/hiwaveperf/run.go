package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hiwaveperf/internal/harness"
	"hiwaveperf/internal/metrics"
	"hiwaveperf/internal/results"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Monte Carlo performance suite",
	Long: `Executes the configured number of randomized trials. Each trial draws a
test page and a viewport at random and measures every enabled renderer against
them. Statistics are aggregated per renderer and written to the output
document; when a baseline is given, regressions are flagged against it.`,
	Args: cobra.NoArgs,
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("iterations", "i", 1000, "number of Monte Carlo iterations")
	runCmd.Flags().StringP("output", "o", "perf-results.json", "output JSON file path")
	runCmd.Flags().StringP("renderer", "r", "all", "renderer to test (hiwave, webkit, blink, gecko, all)")
	runCmd.Flags().StringP("pages-dir", "p", "pages", "test pages directory")
	runCmd.Flags().StringP("baseline", "b", "", "baseline results file for regression comparison")
	runCmd.Flags().String("history", "", "SQLite run-history database (disabled when empty)")
	runCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address during the run")

	viper.BindPFlag("iterations", runCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("renderer", runCmd.Flags().Lookup("renderer"))
	viper.BindPFlag("pages_dir", runCmd.Flags().Lookup("pages-dir"))
	viper.BindPFlag("baseline", runCmd.Flags().Lookup("baseline"))
	viper.BindPFlag("history", runCmd.Flags().Lookup("history"))
	viper.BindPFlag("metrics_addr", runCmd.Flags().Lookup("metrics-addr"))
}

func runSuite(cmd *cobra.Command, args []string) error {
	iterations := viper.GetInt("iterations")
	output := viper.GetString("output")
	renderer := viper.GetString("renderer")
	pagesDir := viper.GetString("pages_dir")
	baseline := viper.GetString("baseline")
	historyPath := viper.GetString("history")
	metricsAddr := viper.GetString("metrics_addr")

	slog.Info("HiWave performance testing harness",
		"iterations", iterations, "output", output, "renderer", renderer)

	suite, err := harness.NewSuite(iterations, pagesDir)
	if err != nil {
		return err
	}
	enableRenderers(suite, renderer)

	var m *metrics.Metrics
	if metricsAddr != "" {
		m = metrics.New()
		suite.SetMetrics(m)
		go func() {
			if err := m.Serve(metricsAddr); err != nil {
				slog.Warn("metrics server stopped", "error", err)
			}
		}()
		slog.Info("serving metrics", "addr", metricsAddr)
	}

	result, err := suite.Run(cmd.Context())
	if err != nil {
		return err
	}

	if baseline != "" {
		comparison, err := result.CompareWithBaseline(baseline)
		if err != nil {
			// A missing or unreadable baseline must not fail the run.
			slog.Warn("baseline comparison skipped", "error", err)
		} else if len(comparison.Regressions) > 0 {
			slog.Warn("regressions detected", "count", len(comparison.Regressions))
			if m != nil {
				m.RegressionsDetected.Add(float64(len(comparison.Regressions)))
			}
			for _, reg := range comparison.Regressions {
				slog.Warn("regression",
					"renderer", reg.Renderer, "metric", reg.Metric,
					"percent_change", fmt.Sprintf("%+.2f%%", reg.PercentChange))
			}
		} else {
			slog.Info("no regressions detected")
		}
	}

	if err := result.Save(output); err != nil {
		return err
	}
	slog.Info("results saved", "path", output)

	if historyPath != "" {
		recordHistory(historyPath, result)
	}

	result.PrintSummary(cmd.OutOrStdout())
	return nil
}

// enableRenderers resolves the --renderer selector. "all" enables every
// renderer usable on this platform; an unrecognized value falls back to the
// primary renderer with a warning.
func enableRenderers(suite *harness.Suite, selector string) {
	switch strings.ToLower(selector) {
	case "hiwave", "webkit", "blink", "gecko":
		suite.EnableRenderer(selector)
	case "all":
		suite.EnableRenderer("hiwave")
		// Baseline renderers are platform dependent; webkit only ships on
		// macOS and the others are not integrated yet.
		if runtime.GOOS == "darwin" {
			suite.EnableRenderer("webkit")
		}
	default:
		slog.Warn("unknown renderer, defaulting to hiwave only", "renderer", selector)
		suite.EnableRenderer("hiwave")
	}
}

// recordHistory appends the run to the SQLite history store. History failures
// are warnings: the JSON document already persisted is the source of truth.
func recordHistory(path string, result *results.RunResult) {
	store, err := results.NewHistoryStore(path)
	if err != nil {
		slog.Warn("run history unavailable", "path", path, "error", err)
		return
	}
	defer store.Close()

	if err := store.SaveRun(result); err != nil {
		slog.Warn("failed to record run history", "error", err)
		return
	}
	slog.Info("run recorded in history", "path", path)
}
