// Package simulator is the thin glue that invokes the external SUMO
// binary for one run. It builds the command line, points the XML outputs
// into the run directory, and waits. No retries: a failed simulation is
// reported once and left to the caller.
package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Options describes one simulator invocation.
type Options struct {
	Binary  string // simulator executable, e.g. "sumo"
	CfgPath string // scenario .sumocfg
	NetPath string // optional network override (optimized plans)
	Seed    int
	Begin   int
	End     int
	OutDir  string // run directory receiving summary.xml and tripinfo.xml
}

// Args builds the SUMO command-line arguments. Emission devices are
// always enabled so tripinfo.xml carries CO2_abs, and unfinished trips
// are written so truncated runs still report.
func (o Options) Args() []string {
	args := []string{
		"-c", o.CfgPath,
		"--begin", strconv.Itoa(o.Begin),
		"--end", strconv.Itoa(o.End),
		"--seed", strconv.Itoa(o.Seed),
		"--summary-output", filepath.Join(o.OutDir, "summary.xml"),
		"--tripinfo-output", filepath.Join(o.OutDir, "tripinfo.xml"),
		"--tripinfo-output.write-unfinished", "true",
		"--device.emissions.probability", "1",
		"--no-step-log", "true",
	}
	if o.NetPath != "" {
		args = append(args, "--net-file", o.NetPath)
	}
	return args
}

// Run executes the simulator and waits for it to finish. The context
// cancels the process.
func Run(ctx context.Context, o Options) error {
	cmd := exec.CommandContext(ctx, o.Binary, o.Args()...)
	slog.Debug("running simulator", "cmd", o.Binary+" "+strings.Join(o.Args(), " "))

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("simulator: %s: %w (output: %s)", o.Binary, err, strings.TrimSpace(string(out)))
	}
	return nil
}
