package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumo-tools/sumoeval/internal/models"
)

var checkSeedsArg string

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check which seeds have complete data for all strategies",
		Long: `Check readiness for the given seeds.

A seed is ready when every strategy has a locatable result document.
Only existence is checked; nothing is parsed.`,
		RunE: checkCommandE,
	}

	cmd.Flags().StringVarP(&checkSeedsArg, "seeds", "s", "", "Comma-separated seed list (required)")
	_ = cmd.MarkFlagRequired("seeds")

	return cmd
}

func checkCommandE(cmd *cobra.Command, _ []string) error {
	seeds, err := parseSeeds(checkSeedsArg)
	if err != nil {
		return err
	}

	_, comparator, err := loadComparator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ready, notReady := comparator.Partition(seeds)

	for _, s := range ready {
		fmt.Fprintf(out, "seed %d: ready\n", s)
	}
	for _, s := range notReady {
		fmt.Fprintf(out, "seed %d: NOT ready\n", s)
		for _, m := range models.AllMethods {
			path, ok := comparator.Store.Locate(m, s)
			if !ok {
				path = "-"
			}
			fmt.Fprintf(out, "    %-14s %s\n", m.Label(), path)
		}
	}
	fmt.Fprintf(out, "\n%d ready, %d not ready\n", len(ready), len(notReady))
	return nil
}
