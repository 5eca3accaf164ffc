// Package compare orchestrates the per-seed comparison pipeline: locate
// each method's result, normalize it, rank, and assemble one comparison
// row per seed. Seeds are independent; the comparator can fan out across
// them while preserving input order in the output.
package compare

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sumo-tools/sumoeval/internal/metrics"
	"github.com/sumo-tools/sumoeval/internal/models"
	"github.com/sumo-tools/sumoeval/internal/ranking"
	"github.com/sumo-tools/sumoeval/internal/runstore"
)

// Comparator builds comparison rows from a run store. The zero Workers
// value means sequential processing.
type Comparator struct {
	Store   *runstore.Store
	Workers int
}

// New returns a sequential Comparator over the given store.
func New(store *runstore.Store) *Comparator {
	return &Comparator{Store: store}
}

// Row computes the full comparison row for one seed. A seed with no data
// at all still yields a row: four empty records, every winner set empty.
func (c *Comparator) Row(seed int) models.ComparisonRow {
	recs := make(map[models.Method]models.Record, len(models.AllMethods))
	for _, m := range models.AllMethods {
		path, _ := c.Store.Locate(m, seed)
		rec := metrics.Normalize(m, path)
		if m.Iterative() && path != "" {
			rec.NetworkPath = runstore.NetworkFor(path)
		}
		recs[m] = rec
	}

	points := ranking.Points(recs)
	return models.ComparisonRow{
		Seed:           seed,
		Records:        recs,
		WaitingWinner:  ranking.WaitingTimeWinner(recs),
		TeleportWinner: ranking.TeleportWinner(recs),
		CO2Winner:      ranking.CO2Winner(recs),
		Points:         points,
		PointsWinner:   ranking.PointsWinner(points),
	}
}

// Compare produces one row per requested seed, duplicates removed,
// first-occurrence order preserved. Rows for different seeds are computed
// concurrently when Workers > 1; the output order is independent of
// scheduling. The only error source is context cancellation.
func (c *Comparator) Compare(ctx context.Context, seeds []int) ([]models.ComparisonRow, error) {
	seeds = Dedupe(seeds)
	rows := make([]models.ComparisonRow, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if c.Workers > 1 {
		g.SetLimit(c.Workers)
	} else {
		g.SetLimit(1)
	}

	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = c.Row(seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Dedupe removes duplicate seeds, keeping first-occurrence order.
func Dedupe(seeds []int) []int {
	seen := make(map[int]bool, len(seeds))
	out := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
