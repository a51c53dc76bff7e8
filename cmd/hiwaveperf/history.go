package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hiwaveperf/internal/results"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history <history.db>",
	Short: "List runs recorded in the history database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := results.NewHistoryStore(args[0])
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.ListRuns(historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCOMMIT\tPLATFORM\tTIMESTAMP\tITERATIONS")
		for _, rec := range records {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
				rec.ID, rec.Commit, rec.Platform,
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Iterations)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
}
