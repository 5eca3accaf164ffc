package runstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// attemptDirPrefix is the fixed prefix of numbered attempt directories
// inside a scenario directory (kosu_001, kosu_002, ...). The name comes
// from the original study's run layout.
const attemptDirPrefix = "kosu_"

// attemptDirName formats an attempt number as a directory name.
func attemptDirName(n int) string {
	return fmt.Sprintf("%s%03d", attemptDirPrefix, n)
}

// attemptNumber parses an attempt directory name. Returns false for names
// that do not carry the prefix plus an integer.
func attemptNumber(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, attemptDirPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// latestAttemptResult scans the immediate attempt directories of a
// scenario directory and returns the result document of the
// highest-numbered attempt that has one. Latest attempt wins, not best
// iteration.
func latestAttemptResult(scenarioDir string) (string, bool) {
	entries, err := os.ReadDir(scenarioDir)
	if err != nil {
		return "", false
	}

	bestN := -1
	best := ""
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, ok := attemptNumber(e.Name())
		if !ok || n <= bestN {
			continue
		}
		if p := filepath.Join(scenarioDir, e.Name(), ResultFileName); fileExists(p) {
			bestN = n
			best = p
		}
	}
	return best, best != ""
}

// NextAttemptDir creates and returns the next free attempt directory
// under a scenario directory, numbering from 001. The scenario directory
// is created when missing.
func NextAttemptDir(scenarioDir string) (string, error) {
	if err := os.MkdirAll(scenarioDir, 0o755); err != nil {
		return "", fmt.Errorf("creating scenario dir: %w", err)
	}

	entries, err := os.ReadDir(scenarioDir)
	if err != nil {
		return "", fmt.Errorf("reading scenario dir: %w", err)
	}

	max := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if n, ok := attemptNumber(e.Name()); ok && n > max {
			max = n
		}
	}

	dir := filepath.Join(scenarioDir, attemptDirName(max+1))
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating attempt dir: %w", err)
	}
	return dir, nil
}
