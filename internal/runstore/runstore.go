// Package runstore locates per-(method, seed) result documents inside a
// run-storage tree and allocates new attempt directories. Candidate
// locations are tried in a fixed priority order; absence is an expected
// outcome, never an error.
package runstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sumo-tools/sumoeval/internal/models"
)

// ResultFileName is the metrics document each run directory carries.
const ResultFileName = "metrics.json"

// networkFileName is the patched network a PSO/Bayesian run leaves next
// to its metrics document.
const networkFileName = "net.xml"

// Store resolves result paths under a single run-storage root.
type Store struct {
	root     string
	prefixes map[models.Method]string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the run-directory prefix for one method.
func WithPrefix(m models.Method, prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefixes[m] = prefix
		}
	}
}

// New creates a Store rooted at the given directory.
func New(root string, opts ...Option) *Store {
	s := &Store{
		root:     root,
		prefixes: make(map[models.Method]string, len(models.AllMethods)),
	}
	for _, m := range models.AllMethods {
		s.prefixes[m] = m.DirPrefix()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the run-storage root directory.
func (s *Store) Root() string {
	return s.root
}

// ScenarioDir returns the method+seed run directory, e.g.
// "<root>/01_temel_seed7" for the baseline at seed 7. The directory may
// not exist.
func (s *Store) ScenarioDir(m models.Method, seed int) string {
	return filepath.Join(s.root, fmt.Sprintf("%s_seed%d", s.prefixes[m], seed))
}

// NetworkFor returns the network file recorded next to a result document,
// or "" when none exists.
func NetworkFor(resultPath string) string {
	p := filepath.Join(filepath.Dir(resultPath), networkFileName)
	if fileExists(p) {
		return p
	}
	return ""
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
