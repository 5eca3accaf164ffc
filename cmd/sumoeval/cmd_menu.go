package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sumo-tools/sumoeval/internal/reporting"
)

type menuAction string

const (
	actionCompare menuAction = "compare"
	actionCheck   menuAction = "check"
	actionQuit    menuAction = "quit"
)

func newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive comparison menu",
		Long: `Open an interactive menu for comparing strategies and checking seed
readiness. Requires a terminal.`,
		RunE: menuCommandE,
	}
}

func menuCommandE(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("menu requires an interactive terminal")
	}

	_, comparator, err := loadComparator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for {
		var action menuAction
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[menuAction]().
					Title("sumoeval").
					Options(
						huh.NewOption("Compare seeds", actionCompare),
						huh.NewOption("Check seed readiness", actionCheck),
						huh.NewOption("Quit", actionQuit),
					).
					Value(&action),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if action == actionQuit {
			return nil
		}

		seeds, err := askSeeds()
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch action {
		case actionCompare:
			// Interactive contexts compare only ready seeds so partial
			// data does not show up as silently-empty rows.
			ready, notReady := comparator.Partition(seeds)
			for _, s := range notReady {
				fmt.Fprintf(out, "seed %d: not ready, skipping\n", s)
			}
			if len(ready) == 0 {
				fmt.Fprintln(out, "no ready seeds")
				continue
			}
			rows, err := comparator.Compare(cmd.Context(), ready)
			if err != nil {
				return err
			}
			reporting.PrintTable(out, rows)
			reporting.PrintSummary(out, rows)
		case actionCheck:
			ready, notReady := comparator.Partition(seeds)
			for _, s := range ready {
				fmt.Fprintf(out, "seed %d: ready\n", s)
			}
			for _, s := range notReady {
				fmt.Fprintf(out, "seed %d: NOT ready\n", s)
			}
		}
	}
}

// askSeeds prompts for a seed list and validates it before anything
// reaches the comparison core.
func askSeeds() ([]int, error) {
	var input string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Seeds").
				Description("Comma-separated seed list, e.g. 1,2,3").
				Placeholder("1,2,3").
				Value(&input).
				Validate(func(s string) error {
					_, err := parseSeeds(s)
					return err
				}),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return parseSeeds(input)
}
