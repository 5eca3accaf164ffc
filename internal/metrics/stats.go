package metrics

import "github.com/sumo-tools/sumoeval/internal/models"

// Mean computes the arithmetic mean of a float64 slice. Returns 0 for
// empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Extractor pulls one optional metric out of a record as a float64.
type Extractor func(models.Record) (float64, bool)

// Known metric extractors shared by the ranking and reporting layers.
// Absent values are excluded, never defaulted.
var (
	WaitingTimeOf Extractor = func(r models.Record) (float64, bool) {
		if r.MeanWaitingTime == nil {
			return 0, false
		}
		return *r.MeanWaitingTime, true
	}
	CO2Of Extractor = func(r models.Record) (float64, bool) {
		if r.CO2Total == nil {
			return 0, false
		}
		return *r.CO2Total, true
	}
	TeleportsOf Extractor = func(r models.Record) (float64, bool) {
		if r.Teleports == nil {
			return 0, false
		}
		return float64(*r.Teleports), true
	}
	EndedOf Extractor = func(r models.Record) (float64, bool) {
		if r.Ended == nil {
			return 0, false
		}
		return float64(*r.Ended), true
	}
)

// KnownValues collects the known values of one metric for a single method
// across a set of comparison rows. Rows where the metric is absent are
// skipped entirely, so a wholly-absent method contributes nothing to a
// displayed average.
func KnownValues(rows []models.ComparisonRow, m models.Method, get Extractor) []float64 {
	var values []float64
	for _, row := range rows {
		if v, ok := get(row.Record(m)); ok {
			values = append(values, v)
		}
	}
	return values
}
