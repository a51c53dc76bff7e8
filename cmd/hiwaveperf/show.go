package main

import (
	"github.com/spf13/cobra"

	"hiwaveperf/internal/results"
)

var showCmd = &cobra.Command{
	Use:   "show <results.json>",
	Short: "Print the summary of a stored result document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := results.Load(args[0])
		if err != nil {
			return err
		}
		result.PrintSummary(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
