package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/sumo-tools/sumoeval/internal/metrics"
	"github.com/sumo-tools/sumoeval/internal/models"
)

const ruleWidth = 78

// PrintTable writes a per-seed comparison block for every row: one line
// per method with its metrics and points, followed by the winner lines.
func PrintTable(w io.Writer, rows []models.ComparisonRow) {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, " SIGNAL CONTROL COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	for _, row := range rows {
		fmt.Fprintln(w)
		fmt.Fprintf(w, " Seed %d\n", row.Seed)
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
		fmt.Fprintf(w, "  %-14s  %10s  %14s  %9s  %7s  %6s\n",
			"Method", "Wait (s)", "CO2", "Teleports", "Ended", "Points")

		for _, m := range models.AllMethods {
			r := row.Record(m)
			fmt.Fprintf(w, "  %-14s  %10s  %14s  %9s  %7s  %6d\n",
				m.Label(),
				cell(formatFloat(r.MeanWaitingTime, 2)),
				cell(formatFloat(r.CO2Total, 3)),
				cell(formatInt(r.Teleports)),
				cell(formatInt(r.Ended)),
				row.Points[m],
			)
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-22s %s\n", "Waiting-time winner:", models.WinnerLabel(row.WaitingWinner))
		fmt.Fprintf(w, "  %-22s %s\n", "Teleport winner:", models.WinnerLabel(row.TeleportWinner))
		fmt.Fprintf(w, "  %-22s %s\n", "CO2 winner:", models.WinnerLabel(row.CO2Winner))
		fmt.Fprintf(w, "  %-22s %s\n", "Points winner:", models.WinnerLabel(row.PointsWinner))
	}
	fmt.Fprintln(w)
}

// PrintSummary writes per-method averages across all rows. Averages only
// cover seeds where the metric is known; a method with no data shows
// empty cells instead of misleading zeros.
func PrintSummary(w io.Writer, rows []models.ComparisonRow) {
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, " AVERAGES OVER %d SEED(S)\n", len(rows))
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "  %-14s  %10s  %14s  %9s  %7s\n",
		"Method", "Wait (s)", "CO2", "Teleports", "Ended")

	for _, m := range models.AllMethods {
		fmt.Fprintf(w, "  %-14s  %10s  %14s  %9s  %7s\n",
			m.Label(),
			cell(meanCell(rows, m, metrics.WaitingTimeOf, 2)),
			cell(meanCell(rows, m, metrics.CO2Of, 3)),
			cell(meanCell(rows, m, metrics.TeleportsOf, 2)),
			cell(meanCell(rows, m, metrics.EndedOf, 2)),
		)
	}
	fmt.Fprintln(w)
}

func meanCell(rows []models.ComparisonRow, m models.Method, get metrics.Extractor, prec int) string {
	values := metrics.KnownValues(rows, m, get)
	if len(values) == 0 {
		return ""
	}
	mean := metrics.Mean(values)
	return fmt.Sprintf("%.*f", prec, mean)
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
