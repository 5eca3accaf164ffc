package compare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumo-tools/sumoeval/internal/models"
	"github.com/sumo-tools/sumoeval/internal/runstore"
)

// writeMetrics drops a metrics.json for one method and seed at the
// conventional first-attempt path.
func writeMetrics(t *testing.T, root string, m models.Method, seed int, content string) {
	t.Helper()
	dir := filepath.Join(root, fmt.Sprintf("%s_seed%d", m.DirPrefix(), seed), "kosu_001")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metrics.json"), []byte(content), 0o644))
}

// seedFixture writes plausible data for all four methods at one seed.
// pso has the best waiting time and CO2 with zero teleports.
func seedFixture(t *testing.T, root string, seed int) {
	t.Helper()
	writeMetrics(t, root, models.MethodBaseline, seed,
		`{"meanWaitingTime": 120.5, "co2_total_abs": 5000.1, "teleports": 0, "ended": 180}`)
	writeMetrics(t, root, models.MethodRuleBased, seed,
		`{"meanWaitingTime": 90.25, "co2_total_abs": 4600.5, "teleports": 0, "ended": 190}`)
	writeMetrics(t, root, models.MethodPSO, seed,
		`{"meanWaitingTime": 60.75, "co2_total_abs": 4200.9, "teleports": 0, "ended": 200}`)
	writeMetrics(t, root, models.MethodBayesianPSO, seed,
		`{"meanWaitingTime": 70.0, "co2_total_abs": 4300.0, "teleports": 2, "ended": 205}`)
}

func TestRowFullSeed(t *testing.T) {
	root := t.TempDir()
	seedFixture(t, root, 1)

	row := New(runstore.New(root)).Row(1)

	assert.Equal(t, 1, row.Seed)
	require.Len(t, row.Records, 4)
	for _, m := range models.AllMethods {
		assert.False(t, row.Record(m).Empty(), "method %s should have data", m)
		assert.NotEmpty(t, row.Record(m).SourcePath)
	}

	assert.Equal(t, []models.Method{models.MethodPSO}, row.WaitingWinner)
	assert.Equal(t, []models.Method{models.MethodPSO}, row.CO2Winner)
	// bayesian_pso is excluded on teleports; the zero-teleport trio is
	// refined by ended count, where pso leads.
	assert.Equal(t, []models.Method{models.MethodPSO}, row.TeleportWinner)
	assert.Equal(t, []models.Method{models.MethodPSO}, row.PointsWinner)
}

func TestRowEmptySeed(t *testing.T) {
	row := New(runstore.New(t.TempDir())).Row(99)

	assert.Equal(t, 99, row.Seed)
	require.Len(t, row.Records, 4, "empty seeds still report all four methods")
	for _, m := range models.AllMethods {
		assert.True(t, row.Record(m).Empty())
	}
	assert.Empty(t, row.WaitingWinner)
	assert.Empty(t, row.TeleportWinner)
	assert.Empty(t, row.CO2Winner)
	assert.Empty(t, row.PointsWinner)
	for _, m := range models.AllMethods {
		assert.Equal(t, 0, row.Points[m])
	}
}

func TestCompareOrderAndDedupe(t *testing.T) {
	root := t.TempDir()
	for _, seed := range []int{5, 2, 9} {
		seedFixture(t, root, seed)
	}

	rows, err := New(runstore.New(root)).Compare(context.Background(), []int{5, 2, 5, 9, 2})
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, 5, rows[0].Seed)
	assert.Equal(t, 2, rows[1].Seed)
	assert.Equal(t, 9, rows[2].Seed)
}

func TestCompareParallelMatchesSequential(t *testing.T) {
	root := t.TempDir()
	seeds := []int{1, 2, 3, 4, 5, 6}
	for _, seed := range seeds {
		seedFixture(t, root, seed)
	}

	sequential := New(runstore.New(root))
	parallel := New(runstore.New(root))
	parallel.Workers = 4

	seqRows, err := sequential.Compare(context.Background(), seeds)
	require.NoError(t, err)
	parRows, err := parallel.Compare(context.Background(), seeds)
	require.NoError(t, err)

	assert.Equal(t, seqRows, parRows)
}

func TestCompareIdempotent(t *testing.T) {
	root := t.TempDir()
	seedFixture(t, root, 3)
	// Seed 4 intentionally absent.

	c := New(runstore.New(root))
	first, err := c.Compare(context.Background(), []int{3, 4})
	require.NoError(t, err)
	second, err := c.Compare(context.Background(), []int{3, 4})
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs must produce identical rows")
}

func TestCompareCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(runstore.New(t.TempDir())).Compare(ctx, []int{1})
	assert.Error(t, err)
}

func TestReadyAndPartition(t *testing.T) {
	root := t.TempDir()
	seedFixture(t, root, 1)
	// Seed 2 is missing bayesian_pso.
	writeMetrics(t, root, models.MethodBaseline, 2, `{"teleports": 0}`)
	writeMetrics(t, root, models.MethodRuleBased, 2, `{"teleports": 0}`)
	writeMetrics(t, root, models.MethodPSO, 2, `{"teleports": 0}`)

	c := New(runstore.New(root))

	assert.True(t, c.Ready(1))
	assert.False(t, c.Ready(2))
	assert.False(t, c.Ready(3))

	ready, notReady := c.Partition([]int{2, 1, 3, 1})
	assert.Equal(t, []int{1}, ready)
	assert.Equal(t, []int{2, 3}, notReady)
}

func TestRowPicksUpNetworkPath(t *testing.T) {
	root := t.TempDir()
	seedFixture(t, root, 7)
	runDir := filepath.Join(root, "03_pso_seed7", "kosu_001")
	require.NoError(t, os.WriteFile(filepath.Join(runDir, "net.xml"), []byte("<net/>"), 0o644))

	row := New(runstore.New(root)).Row(7)

	assert.Equal(t, filepath.Join(runDir, "net.xml"), row.Record(models.MethodPSO).NetworkPath)
	assert.Empty(t, row.Record(models.MethodBaseline).NetworkPath, "network path is only tracked for iterative methods")
}
