package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumo-tools/sumoeval/internal/models"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func sampleRows() []models.ComparisonRow {
	records := map[models.Method]models.Record{
		models.MethodBaseline: {
			Method:          models.MethodBaseline,
			MeanWaitingTime: fp(100.5),
			Teleports:       ip(0),
			Ended:           ip(200),
			SourcePath:      "runs/01_temel_seed1/kosu_001/metrics.json",
		},
		models.MethodRuleBased:   {Method: models.MethodRuleBased},
		models.MethodPSO:         {Method: models.MethodPSO, MeanWaitingTime: fp(60.1), Teleports: ip(0)},
		models.MethodBayesianPSO: {Method: models.MethodBayesianPSO},
	}
	return []models.ComparisonRow{{
		Seed:          1,
		Records:       records,
		WaitingWinner: []models.Method{models.MethodPSO},
		Points: map[models.Method]int{
			models.MethodBaseline: 5,
			models.MethodPSO:      8,
		},
		PointsWinner: []models.Method{models.MethodPSO},
	}}
}

func TestSaveAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)

	require.NoError(t, store.Save("batch-1", sampleRows()))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 4, "one entry per method")

	byMethod := make(map[string]Entry, len(entries))
	for _, e := range entries {
		assert.Equal(t, "batch-1", e.BatchID)
		assert.Equal(t, 1, e.Seed)
		byMethod[e.Method] = e
	}

	base := byMethod["baseline"]
	require.NotNil(t, base.MeanWaitingTime)
	assert.Equal(t, 100.5, *base.MeanWaitingTime)
	assert.Equal(t, 5, base.Points)
	assert.Equal(t, "PSO", base.PointsWinner)

	rule := byMethod["rule_based"]
	assert.Nil(t, rule.MeanWaitingTime, "absent metrics stay NULL")
	assert.Nil(t, rule.Teleports)
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	require.NoError(t, store.Save("batch-1", sampleRows()))
	require.NoError(t, store.Save("batch-2", sampleRows()))

	entries, err := store.Recent(4)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "batch-2", entries[0].BatchID, "newest first")
}

func TestSaveEmptyBatch(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	assert.NoError(t, store.Save("batch-1", nil))
}
