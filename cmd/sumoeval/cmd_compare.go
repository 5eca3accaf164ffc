package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sumo-tools/sumoeval/internal/compare"
	"github.com/sumo-tools/sumoeval/internal/config"
	"github.com/sumo-tools/sumoeval/internal/history"
	"github.com/sumo-tools/sumoeval/internal/models"
	"github.com/sumo-tools/sumoeval/internal/reporting"
	"github.com/sumo-tools/sumoeval/internal/runstore"
)

// configPath is the --config persistent flag shared by all subcommands.
var configPath = "sumoeval.yaml"

var (
	compareSeedsArg    string
	compareFormat      string
	compareOutput      string
	compareReadyOnly   bool
	compareSaveHistory bool
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare all strategies across one or more seeds",
		Long: `Compare the four control strategies for the given seeds.

For each seed the command locates every strategy's result document,
ranks the strategies on waiting time, CO2 and teleports, computes the
aggregate point scores, and prints or exports one comparison row per
seed. Seeds with missing data still produce a (partially empty) row.`,
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareSeedsArg, "seeds", "s", "", "Comma-separated seed list, e.g. 1,2,3 (required)")
	cmd.Flags().StringVarP(&compareFormat, "format", "f", "table", "Output format: table, csv or json")
	cmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&compareReadyOnly, "ready-only", false, "Skip seeds that are missing data for any strategy")
	cmd.Flags().BoolVar(&compareSaveHistory, "history", false, "Append the comparison to the history database")
	_ = cmd.MarkFlagRequired("seeds")

	return cmd
}

func compareCommandE(cmd *cobra.Command, _ []string) error {
	if compareFormat != "table" && compareFormat != "csv" && compareFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table, csv or json", compareFormat)
	}

	seeds, err := parseSeeds(compareSeedsArg)
	if err != nil {
		return err
	}

	cfg, comparator, err := loadComparator()
	if err != nil {
		return err
	}

	if compareReadyOnly {
		var notReady []int
		seeds, notReady = comparator.Partition(seeds)
		for _, s := range notReady {
			fmt.Fprintf(cmd.ErrOrStderr(), "seed %d: not ready, skipping\n", s)
		}
		if len(seeds) == 0 {
			return fmt.Errorf("no ready seeds")
		}
	}

	rows, err := comparator.Compare(cmd.Context(), seeds)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if compareOutput != "" {
		f, err := os.Create(compareOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", compareOutput, err)
		}
		defer f.Close() //nolint:errcheck
		out = f
	}

	switch compareFormat {
	case "csv":
		if err := reporting.WriteCSV(out, rows); err != nil {
			return err
		}
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling rows: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		reporting.PrintTable(out, rows)
		reporting.PrintSummary(out, rows)
	}

	if compareSaveHistory {
		if err := saveHistory(cfg, rows); err != nil {
			return err
		}
	}
	return nil
}

// loadComparator builds the comparator from the configured runs root
// and method prefix overrides.
func loadComparator() (config.Config, *compare.Comparator, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}

	var opts []runstore.Option
	for id, prefix := range cfg.MethodPrefixes {
		m := models.Method(id)
		if !m.Valid() {
			return cfg, nil, fmt.Errorf("config: unknown method %q in method_prefixes", id)
		}
		opts = append(opts, runstore.WithPrefix(m, prefix))
	}

	comparator := compare.New(runstore.New(cfg.RunsRoot, opts...))
	comparator.Workers = cfg.Workers
	return cfg, comparator, nil
}

func saveHistory(cfg config.Config, rows []models.ComparisonRow) error {
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	return store.Save(uuid.NewString(), rows)
}
