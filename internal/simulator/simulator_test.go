package simulator

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	o := Options{
		Binary:  "sumo",
		CfgPath: "scenario/bridge.sumocfg",
		Seed:    42,
		Begin:   0,
		End:     3600,
		OutDir:  "runs/01_temel_seed42/kosu_001",
	}

	args := o.Args()

	assert.Contains(t, args, "--seed")
	assert.Contains(t, args, "42")
	assert.Contains(t, args, filepath.Join(o.OutDir, "summary.xml"))
	assert.Contains(t, args, filepath.Join(o.OutDir, "tripinfo.xml"))
	assert.Contains(t, args, "--device.emissions.probability")
	assert.NotContains(t, args, "--net-file", "no network override by default")
}

func TestArgsWithNetworkOverride(t *testing.T) {
	o := Options{Binary: "sumo", CfgPath: "c.sumocfg", NetPath: "runs/03_pso_seed1/kosu_002/net.xml"}

	args := o.Args()

	require.Contains(t, args, "--net-file")
	assert.Contains(t, args, o.NetPath)
}

func TestRunMissingBinary(t *testing.T) {
	err := Run(context.Background(), Options{
		Binary:  "definitely-not-a-simulator",
		CfgPath: "c.sumocfg",
		OutDir:  t.TempDir(),
	})
	assert.Error(t, err)
}
