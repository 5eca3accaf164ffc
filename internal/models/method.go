// Package models holds the shared types for strategy comparison: the
// fixed set of control methods, the per-run metrics record, and the
// per-seed comparison row.
package models

import "strings"

// Method identifies one of the four compared signal-control strategies.
type Method string

const (
	// MethodBaseline is the static fixed-time signal plan.
	MethodBaseline Method = "baseline"
	// MethodRuleBased is the queue-actuated rule controller.
	MethodRuleBased Method = "rule_based"
	// MethodPSO is the particle-swarm-optimized plan.
	MethodPSO Method = "pso"
	// MethodBayesianPSO is the Bayesian-optimized plan.
	MethodBayesianPSO Method = "bayesian_pso"
)

// AllMethods lists every method in its canonical order. The order is the
// default precedence for display and tie-preservation; it carries no
// ranking weight.
var AllMethods = []Method{MethodBaseline, MethodRuleBased, MethodPSO, MethodBayesianPSO}

// methodDirPrefixes maps each method to the numeric+name prefix its run
// directories carry on disk. The names come from the original study's run
// layout, so existing run trees stay locatable.
var methodDirPrefixes = map[Method]string{
	MethodBaseline:    "01_temel",
	MethodRuleBased:   "02_kural",
	MethodPSO:         "03_pso",
	MethodBayesianPSO: "05_bo",
}

// DirPrefix returns the run-directory prefix for the method, e.g.
// "01_temel" for the baseline. Seed directories are named
// "<prefix>_seed<N>".
func (m Method) DirPrefix() string {
	return methodDirPrefixes[m]
}

// Iterative reports whether the method's results come from an iterative
// search that produces numbered attempt directories.
func (m Method) Iterative() bool {
	return m == MethodPSO || m == MethodBayesianPSO
}

// Label returns the display form of the method name.
func (m Method) Label() string {
	return strings.ToUpper(string(m))
}

// Valid reports whether m is one of the four known methods.
func (m Method) Valid() bool {
	_, ok := methodDirPrefixes[m]
	return ok
}
