package runstore

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sumo-tools/sumoeval/internal/models"
)

// Locate finds the most authoritative result document for a (method, seed)
// pair. Candidates are tried in priority order, first hit wins:
//
//  1. the conventional first-attempt path <scenario>/kosu_001/metrics.json,
//  2. for iterative methods, the highest-numbered attempt directory that
//     contains a result ("latest attempt wins"),
//  3. the flat path <scenario>/metrics.json,
//  4. a recursive search under the whole root, filtered by the method's
//     directory prefix and an exact seed tag.
//
// Returns ("", false) when nothing is found; that is a valid outcome.
func (s *Store) Locate(m models.Method, seed int) (string, bool) {
	dir := s.ScenarioDir(m, seed)

	if p := filepath.Join(dir, attemptDirName(1), ResultFileName); fileExists(p) {
		return p, true
	}

	if m.Iterative() {
		if p, ok := latestAttemptResult(dir); ok {
			return p, true
		}
	}

	if p := filepath.Join(dir, ResultFileName); fileExists(p) {
		return p, true
	}

	return s.deepSearch(m, seed)
}

// deepSearch walks the whole run-storage root looking for any result
// document whose path mentions the method's directory prefix and the
// exact seed. WalkDir visits entries in lexical order, so the first match
// is deterministic.
func (s *Store) deepSearch(m models.Method, seed int) (string, bool) {
	token := s.prefixes[m]
	seedTag := fmt.Sprintf("seed%d", seed)

	var found string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() || d.Name() != ResultFileName {
			return nil
		}
		if !strings.Contains(path, token) || !containsSeedTag(path, seedTag) {
			return nil
		}
		found = path
		return fs.SkipAll
	})
	if err != nil || found == "" {
		return "", false
	}
	slog.Debug("result located by deep search", "method", m, "seed", seed, "path", found)
	return found, true
}

// containsSeedTag reports whether path contains the seed tag as a whole
// number: "seed2" must not match inside "seed21" or "seed42"'s tail. The
// tag is only accepted when the following character is not a digit.
func containsSeedTag(path, tag string) bool {
	for from := 0; ; {
		i := strings.Index(path[from:], tag)
		if i < 0 {
			return false
		}
		end := from + i + len(tag)
		if end >= len(path) || path[end] < '0' || path[end] > '9' {
			return true
		}
		from = end
	}
}
