package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hiwaveperf/internal/config"
	"hiwaveperf/internal/telemetry"
)

var exit = os.Exit

var (
	cfgFile string
	logFile string
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hiwaveperf",
	Short: "HiWave performance testing harness",
	Long: `hiwaveperf measures and compares the rendering performance of multiple
back ends by running randomized Monte Carlo trials over a corpus of test pages,
aggregating per-phase timing and memory statistics, and flagging regressions
against a stored baseline.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose/debug logging")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), logFile)
}
