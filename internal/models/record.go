package models

import "math"

// TeleportMax is the sentinel substituted for an unknown teleport count in
// minimum-based comparisons, so an absent value can never win. It never
// appears in serialized output; absent stays absent there.
const TeleportMax = math.MaxInt32

// Record is the canonical per-(method, seed) metrics record. Every field
// except Method and SourcePath is optional: a nil pointer means the value
// was absent or unparseable at the source, which is distinct from zero.
type Record struct {
	Method Method `json:"method"`

	// MeanWaitingTime is the mean vehicle waiting time in seconds,
	// rounded to 2 decimals.
	MeanWaitingTime *float64 `json:"mean_waiting_time,omitempty"`
	// CO2Total is the summed absolute CO2 output over all trips,
	// rounded to 3 decimals.
	CO2Total *float64 `json:"co2_total,omitempty"`
	// Teleports counts forced vehicle removals by the simulator.
	Teleports *int `json:"teleports,omitempty"`
	// Ended counts vehicles that completed their route normally.
	Ended *int `json:"ended,omitempty"`

	// SourcePath is where the record was read from; empty when nothing
	// was located. Kept for audit columns in reports.
	SourcePath string `json:"source_path,omitempty"`
	// NetworkPath identifies the optimized network file that produced
	// the result. Only meaningful for iterative methods.
	NetworkPath string `json:"network_path,omitempty"`
}

// TeleportsOrMax returns the teleport count, or TeleportMax when it is
// unknown.
func (r Record) TeleportsOrMax() int {
	if r.Teleports == nil {
		return TeleportMax
	}
	return *r.Teleports
}

// ZeroTeleports reports whether the teleport count is known and equals
// zero. Only such records are eligible for waiting-time and CO2
// comparisons.
func (r Record) ZeroTeleports() bool {
	return r.Teleports != nil && *r.Teleports == 0
}

// Empty reports whether the record carries no metric values at all.
func (r Record) Empty() bool {
	return r.MeanWaitingTime == nil && r.CO2Total == nil && r.Teleports == nil && r.Ended == nil
}
