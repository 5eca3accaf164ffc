package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sumoeval",
		Short: "sumoeval - compare SUMO traffic-signal control strategies",
		Long: `sumoeval compares traffic-signal control strategies (static baseline,
rule-based, PSO-optimized, Bayesian-optimized) across simulation seeds.

It locates each strategy's run results, ranks them on waiting time, CO2
and teleports, and exports comparison reports.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "sumoeval.yaml", "Path to the project config file")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newExtractCommand())
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newMenuCommand())
	cmd.AddCommand(newHistoryCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
