// Package config loads the optional project configuration file. Every
// field has a working default so the tool runs without any file present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional config file name looked up in the
// working directory.
const DefaultFileName = "sumoeval.yaml"

// Config controls where runs live and how the tools invoke SUMO.
type Config struct {
	// RunsRoot is the run-storage root all result lookups go through.
	RunsRoot string `yaml:"runs_root"`
	// SumoBinary is the simulator executable name or path.
	SumoBinary string `yaml:"sumo_binary"`
	// ScenarioCfg is the .sumocfg handed to the simulator.
	ScenarioCfg string `yaml:"scenario_cfg"`
	// Workers bounds per-seed comparison parallelism; 1 = sequential.
	Workers int `yaml:"workers"`
	// HistoryDB is the sqlite file comparison history is appended to.
	HistoryDB string `yaml:"history_db"`
	// MethodPrefixes overrides the run-directory prefix per method id,
	// e.g. {"pso": "03_pso_v2"}.
	MethodPrefixes map[string]string `yaml:"method_prefixes,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		RunsRoot:   "runs",
		SumoBinary: "sumo",
		Workers:    1,
		HistoryDB:  "sumoeval.db",
	}
}

// Load reads the config file at path, filling unset fields from Default.
// A missing file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
