// Package ranking selects per-seed winners among the four control
// strategies. Three single-criterion policies pick a winner set each, and
// an aggregate point ranking scores all methods across the three raw
// metrics. Every selection is deterministic: methods are always visited
// in models.AllMethods order, and ties are preserved in that order rather
// than broken arbitrarily.
package ranking

import (
	"math"

	"github.com/sumo-tools/sumoeval/internal/metrics"
	"github.com/sumo-tools/sumoeval/internal/models"
)

// WaitingTimeWinner returns the methods with the minimum known waiting
// time among those whose teleport count is known to be zero. A teleport
// truncates a vehicle's recorded waiting contribution, so methods with
// teleports (or an unknown count) are ineligible. Empty when no method
// qualifies.
func WaitingTimeWinner(recs map[models.Method]models.Record) []models.Method {
	return minOver(recs, func(r models.Record) (float64, bool) {
		if !r.ZeroTeleports() {
			return 0, false
		}
		return metrics.WaitingTimeOf(r)
	})
}

// CO2Winner returns the methods with the minimum known CO2 total among
// those with zero known teleports. Empty when no method qualifies.
func CO2Winner(recs map[models.Method]models.Record) []models.Method {
	return minOver(recs, func(r models.Record) (float64, bool) {
		if !r.ZeroTeleports() {
			return 0, false
		}
		return metrics.CO2Of(r)
	})
}

// TeleportWinner returns the methods with the fewest known teleports,
// refined first by maximum known ended count and then by minimum known
// waiting time. Each refinement stage only applies when at least one
// surviving candidate has the needed field; missing data never eliminates
// a candidate on its own.
func TeleportWinner(recs map[models.Method]models.Record) []models.Method {
	winners := minOver(recs, metrics.TeleportsOf)
	if len(winners) <= 1 {
		return winners
	}
	winners = refine(recs, winners, func(r models.Record) (float64, bool) {
		v, ok := metrics.EndedOf(r)
		return -v, ok // max ended
	})
	if len(winners) <= 1 {
		return winners
	}
	return refine(recs, winners, metrics.WaitingTimeOf)
}

// minOver selects the methods minimizing the extracted value, skipping
// methods where the value is absent. Empty when no method has the value.
func minOver(recs map[models.Method]models.Record, get metrics.Extractor) []models.Method {
	best := math.Inf(1)
	var winners []models.Method
	for _, m := range models.AllMethods {
		v, ok := get(recs[m])
		if !ok {
			continue
		}
		switch {
		case v < best:
			best = v
			winners = []models.Method{m}
		case v == best:
			winners = append(winners, m)
		}
	}
	return winners
}

// refine narrows a candidate set to those minimizing the extracted value.
// When no candidate has the value the stage is skipped and the set is
// returned unchanged.
func refine(recs map[models.Method]models.Record, cands []models.Method, get metrics.Extractor) []models.Method {
	best := math.Inf(1)
	var kept []models.Method
	for _, m := range cands {
		v, ok := get(recs[m])
		if !ok {
			continue
		}
		switch {
		case v < best:
			best = v
			kept = []models.Method{m}
		case v == best:
			kept = append(kept, m)
		}
	}
	if kept == nil {
		return cands
	}
	return kept
}
