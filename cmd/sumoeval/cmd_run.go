package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumo-tools/sumoeval/internal/config"
	"github.com/sumo-tools/sumoeval/internal/models"
	"github.com/sumo-tools/sumoeval/internal/runstore"
	"github.com/sumo-tools/sumoeval/internal/simulator"
	"github.com/sumo-tools/sumoeval/internal/sumoxml"
)

var (
	runMethodArg string
	runSeed      int
	runBegin     int
	runEnd       int
	runNetPath   string
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and extract its metrics",
		Long: `Run the simulator for one strategy and seed.

Allocates the next attempt directory under the strategy's seed
directory, invokes SUMO with the scenario config, and extracts
metrics.json from the XML outputs when the run finishes.`,
		RunE: runCommandE,
	}

	cmd.Flags().StringVarP(&runMethodArg, "method", "m", "", "Strategy id: baseline, rule_based, pso or bayesian_pso (required)")
	cmd.Flags().IntVar(&runSeed, "seed", 1, "Simulation seed")
	cmd.Flags().IntVar(&runBegin, "begin", 0, "Simulation begin time (s)")
	cmd.Flags().IntVar(&runEnd, "end", 3600, "Simulation end time (s)")
	cmd.Flags().StringVar(&runNetPath, "net", "", "Optional network file override (optimized plans)")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

func runCommandE(cmd *cobra.Command, _ []string) error {
	method := models.Method(runMethodArg)
	if !method.Valid() {
		return fmt.Errorf("unknown method %q", runMethodArg)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store := runstore.New(cfg.RunsRoot)
	runDir, err := runstore.NextAttemptDir(store.ScenarioDir(method, runSeed))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run dir: %s\n", runDir)

	err = simulator.Run(cmd.Context(), simulator.Options{
		Binary:  cfg.SumoBinary,
		CfgPath: cfg.ScenarioCfg,
		NetPath: runNetPath,
		Seed:    runSeed,
		Begin:   runBegin,
		End:     runEnd,
		OutDir:  runDir,
	})
	if err != nil {
		return err
	}

	doc, err := sumoxml.Extract(runDir, string(method))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"done: ended=%d teleports=%d meanWaitingTime=%.2f\n",
		doc.Ended, doc.Teleports, doc.MeanWaitingTime)
	return nil
}
