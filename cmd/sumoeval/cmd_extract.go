package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumo-tools/sumoeval/internal/sumoxml"
)

var extractAlgo string

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <run-dir>",
		Short: "Extract metrics.json from a run directory's XML outputs",
		Long: `Extract run metrics from summary.xml and tripinfo.xml inside the given
run directory and write the consolidated metrics.json next to them.`,
		Args: cobra.ExactArgs(1),
		RunE: extractCommandE,
	}

	cmd.Flags().StringVar(&extractAlgo, "algo", "", "Strategy label recorded in the document (e.g. baseline)")

	return cmd
}

func extractCommandE(cmd *cobra.Command, args []string) error {
	doc, err := sumoxml.Extract(args[0], extractAlgo)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"wrote metrics.json: ended=%d teleports=%d meanWaitingTime=%.2f co2_total_abs=%.3f (co2 present: %v)\n",
		doc.Ended, doc.Teleports, doc.MeanWaitingTime, doc.Total, doc.CO2Present)
	return nil
}
