// Package reporting renders comparison rows as a flat CSV table and as a
// human-readable terminal report. Absent metric values render as empty
// cells, never as zeros.
package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sumo-tools/sumoeval/internal/models"
)

// CSVHeader returns the column names of the flat comparison table: seed,
// per-method metric columns, the three winner columns, per-method point
// totals, the points winner, and per-method source paths for auditing.
func CSVHeader() []string {
	header := []string{"seed"}
	for _, m := range models.AllMethods {
		id := string(m)
		header = append(header,
			id+"_waiting_time",
			id+"_co2_total",
			id+"_teleports",
			id+"_ended",
		)
	}
	header = append(header, "waiting_winner", "teleport_winner", "co2_winner")
	for _, m := range models.AllMethods {
		header = append(header, string(m)+"_points")
	}
	header = append(header, "points_winner")
	for _, m := range models.AllMethods {
		header = append(header, string(m)+"_source")
	}
	return header
}

// WriteCSV writes the comparison table for the given rows.
func WriteCSV(w io.Writer, rows []models.ComparisonRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return fmt.Errorf("csv: writing header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(csvRecord(row)); err != nil {
			return fmt.Errorf("csv: writing seed %d: %w", row.Seed, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(row models.ComparisonRow) []string {
	record := []string{strconv.Itoa(row.Seed)}
	for _, m := range models.AllMethods {
		r := row.Record(m)
		record = append(record,
			formatFloat(r.MeanWaitingTime, 2),
			formatFloat(r.CO2Total, 3),
			formatInt(r.Teleports),
			formatInt(r.Ended),
		)
	}
	record = append(record,
		models.WinnerLabel(row.WaitingWinner),
		models.WinnerLabel(row.TeleportWinner),
		models.WinnerLabel(row.CO2Winner),
	)
	for _, m := range models.AllMethods {
		record = append(record, strconv.Itoa(row.Points[m]))
	}
	record = append(record, models.WinnerLabel(row.PointsWinner))
	for _, m := range models.AllMethods {
		record = append(record, row.Record(m).SourcePath)
	}
	return record
}

// formatFloat renders an optional float with fixed precision, empty when
// absent.
func formatFloat(v *float64, prec int) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

// formatInt renders an optional int, empty when absent.
func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
