package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hiwaveperf/internal/results"
)

var compareStrict bool

var compareCmd = &cobra.Command{
	Use:   "compare <results.json> <baseline.json>",
	Short: "Compare a stored result document against a baseline",
	Long: `Loads two previously saved result documents and reports regressions using
the same thresholds as a live run: total render time more than 5% slower, or
memory usage more than 15% larger, per renderer. Renderers present in only one
document are skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolVar(&compareStrict, "strict", false, "exit nonzero when regressions are detected")
}

func runCompare(cmd *cobra.Command, args []string) error {
	current, err := results.Load(args[0])
	if err != nil {
		return err
	}

	comparison, err := current.CompareWithBaseline(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Baseline: %s @ %s\n",
		comparison.BaselineCommit, comparison.BaselineTimestamp.Format("2006-01-02"))
	fmt.Fprintf(out, "Current:  %s @ %s\n\n",
		current.GitCommit, current.Timestamp.Format("2006-01-02"))

	if len(comparison.Regressions) == 0 {
		fmt.Fprintln(out, "No regressions detected.")
		return nil
	}

	fmt.Fprintf(out, "%d regression(s) detected:\n", len(comparison.Regressions))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RENDERER\tMETRIC\tBASELINE\tCURRENT\tCHANGE")
	for _, reg := range comparison.Regressions {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%+.2f%%\n",
			reg.Renderer, reg.Metric, reg.BaselineValue, reg.CurrentValue, reg.PercentChange)
	}
	tw.Flush()

	if compareStrict {
		return fmt.Errorf("%d regression(s) detected", len(comparison.Regressions))
	}
	return nil
}
