package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumo-tools/sumoeval/internal/config"
	"github.com/sumo-tools/sumoeval/internal/history"
)

var historyLimit int

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently saved comparison results",
		RunE:  historyCommandE,
	}

	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 40, "Maximum number of entries to show")

	return cmd
}

func historyCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no history")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-20s  %5s  %-14s  %10s  %9s  %6s  %s\n",
		"saved", "seed", "method", "wait (s)", "teleports", "points", "points winner")
	for _, e := range entries {
		wait := "-"
		if e.MeanWaitingTime != nil {
			wait = fmt.Sprintf("%.2f", *e.MeanWaitingTime)
		}
		teleports := "-"
		if e.Teleports != nil {
			teleports = fmt.Sprintf("%d", *e.Teleports)
		}
		fmt.Fprintf(out, "%-20s  %5d  %-14s  %10s  %9s  %6d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Seed, e.Method, wait, teleports, e.Points, e.PointsWinner)
	}
	return nil
}
