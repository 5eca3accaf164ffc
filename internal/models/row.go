package models

import "strings"

// ComparisonRow is the full comparison result for one seed: the four
// canonical records, the three single-criterion winner sets, the
// per-method point totals, and the points winner. Rows are built once and
// never mutated.
type ComparisonRow struct {
	Seed int `json:"seed"`

	// Records always holds exactly one entry per method, even when the
	// record inside is empty. Absence of data is reported, not dropped.
	Records map[Method]Record `json:"records"`

	// Winner sets per policy; empty means no eligible candidate. Order
	// follows AllMethods.
	WaitingWinner  []Method `json:"waiting_winner"`
	TeleportWinner []Method `json:"teleport_winner"`
	CO2Winner      []Method `json:"co2_winner"`

	// Points holds the aggregate point total per method.
	Points map[Method]int `json:"points"`
	// PointsWinner is the set of methods with the maximum total; empty
	// when no metric was known for any method.
	PointsWinner []Method `json:"points_winner"`
}

// Record returns the canonical record for the given method.
func (row ComparisonRow) Record(m Method) Record {
	return row.Records[m]
}

// WinnerLabel renders a winner set for display: uppercase method names
// joined by " = ", or "-" for an empty set.
func WinnerLabel(ms []Method) string {
	if len(ms) == 0 {
		return "-"
	}
	labels := make([]string, len(ms))
	for i, m := range ms {
		labels[i] = m.Label()
	}
	return strings.Join(labels, " = ")
}
