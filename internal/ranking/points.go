package ranking

import (
	"sort"

	"github.com/sumo-tools/sumoeval/internal/metrics"
	"github.com/sumo-tools/sumoeval/internal/models"
)

// pointMetrics are the three lower-is-better metrics the aggregate
// ranking scores. Ended count deliberately stays out: it only acts as a
// tie-break inside the teleport policy.
var pointMetrics = []metrics.Extractor{
	metrics.WaitingTimeOf,
	metrics.CO2Of,
	metrics.TeleportsOf,
}

// Points computes the aggregate point total per method. For each metric,
// only methods with a known value participate: distinct values ascending
// get ranks 1..k, tied methods share the rank, and rank r among n
// participants scores max(0, n-r+1). A method missing the metric scores 0
// for it rather than being ranked worst. The result always holds an entry
// for every method.
func Points(recs map[models.Method]models.Record) map[models.Method]int {
	totals := make(map[models.Method]int, len(models.AllMethods))
	for _, m := range models.AllMethods {
		totals[m] = 0
	}

	for _, get := range pointMetrics {
		var (
			known  []models.Method
			values []float64
		)
		for _, m := range models.AllMethods {
			if v, ok := get(recs[m]); ok {
				known = append(known, m)
				values = append(values, v)
			}
		}
		n := len(known)
		if n == 0 {
			continue
		}

		ranks := distinctRanks(values)
		for i, m := range known {
			if score := n - ranks[values[i]] + 1; score > 0 {
				totals[m] += score
			}
		}
	}
	return totals
}

// distinctRanks maps each distinct value to its 1-based rank in ascending
// order.
func distinctRanks(values []float64) map[float64]int {
	distinct := make([]float64, 0, len(values))
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Float64s(distinct)

	ranks := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		ranks[v] = i + 1
	}
	return ranks
}

// PointsWinner returns the methods with the maximum point total. Empty
// when the maximum is zero, which only happens when no metric was known
// for any method.
func PointsWinner(totals map[models.Method]int) []models.Method {
	best := 0
	var winners []models.Method
	for _, m := range models.AllMethods {
		t := totals[m]
		switch {
		case t > best:
			best = t
			winners = []models.Method{m}
		case t == best && t > 0:
			winners = append(winners, m)
		}
	}
	return winners
}
