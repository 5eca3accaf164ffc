package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "sumoeval.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "runs", cfg.RunsRoot)
	assert.Equal(t, "sumo", cfg.SumoBinary)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumoeval.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
runs_root: /data/runs
workers: 4
method_prefixes:
  pso: 03_pso_v2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/runs", cfg.RunsRoot)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "sumo", cfg.SumoBinary, "unset fields keep defaults")
	assert.Equal(t, "03_pso_v2", cfg.MethodPrefixes["pso"])
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumoeval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs_root: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClampsWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumoeval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
}
