// Package metrics parses raw per-run metrics documents into canonical
// records. Parsing never fails the caller: a missing file, a malformed
// document, or a wrong-typed field degrades to an empty value for the
// affected field or record.
package metrics

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"

	"github.com/sumo-tools/sumoeval/internal/models"
)

// Document field names as written by the metrics extractor.
const (
	keyMeanWaitingTime = "meanWaitingTime"
	keyCO2TotalAbs     = "co2_total_abs"
	keyTeleports       = "teleports"
	keyEnded           = "ended"
)

// Normalize reads the metrics document at path and returns the canonical
// record for the method. An empty path, an unreadable file, or an
// unparseable document yields a record with all metric fields empty;
// a field that is present but not numeric is emptied individually.
// Unknown fields are ignored.
func Normalize(method models.Method, path string) models.Record {
	rec := models.Record{Method: method, SourcePath: path}
	if path == "" {
		return rec
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("metrics document unreadable", "method", method, "path", path, "err", err)
		return rec
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Debug("metrics document unparseable", "method", method, "path", path, "err", err)
		return rec
	}

	if v, ok := floatField(doc, keyMeanWaitingTime); ok {
		v = round(v, 2)
		rec.MeanWaitingTime = &v
	}
	if v, ok := floatField(doc, keyCO2TotalAbs); ok {
		v = round(v, 3)
		rec.CO2Total = &v
	}
	if v, ok := intField(doc, keyTeleports); ok {
		rec.Teleports = &v
	}
	if v, ok := intField(doc, keyEnded); ok {
		rec.Ended = &v
	}
	return rec
}

func floatField(doc map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := doc[key]
	if !ok {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// intField accepts integer fields written as JSON floats (e.g. 3.0) and
// truncates them.
func intField(doc map[string]json.RawMessage, key string) (int, bool) {
	v, ok := floatField(doc, key)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
