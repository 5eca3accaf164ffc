// Package sumoxml extracts run metrics from the simulator's XML outputs
// (summary.xml, tripinfo.xml) and writes the consolidated metrics.json
// document the comparison pipeline consumes.
package sumoxml

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// SummaryStep holds the fields of the last <step> element of summary.xml.
// Missing attributes default to zero at this layer; the comparison core
// treats absence separately, on the metrics.json level.
type SummaryStep struct {
	Time            float64 `json:"time"`
	Inserted        int     `json:"inserted"`
	Running         int     `json:"running"`
	Waiting         int     `json:"waiting"`
	Ended           int     `json:"ended"`
	Teleports       int     `json:"teleports"`
	MeanTravelTime  float64 `json:"meanTravelTime"`
	MeanWaitingTime float64 `json:"meanWaitingTime"`
	Halting         int     `json:"halting"`
}

// ParseSummaryLastStep reads summary.xml and returns its final <step>.
func ParseSummaryLastStep(path string) (SummaryStep, error) {
	f, err := os.Open(path)
	if err != nil {
		return SummaryStep{}, fmt.Errorf("summary: %w", err)
	}
	defer f.Close() //nolint:errcheck

	dec := xml.NewDecoder(f)
	var (
		last  SummaryStep
		found bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SummaryStep{}, fmt.Errorf("summary: parsing %s: %w", path, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "step" {
			continue
		}
		last = stepFromAttrs(se.Attr)
		found = true
		if err := dec.Skip(); err != nil {
			return SummaryStep{}, fmt.Errorf("summary: parsing %s: %w", path, err)
		}
	}
	if !found {
		return SummaryStep{}, fmt.Errorf("summary: no step elements in %s", path)
	}
	return last, nil
}

func stepFromAttrs(attrs []xml.Attr) SummaryStep {
	var s SummaryStep
	for _, a := range attrs {
		switch a.Name.Local {
		case "time":
			s.Time = toFloat(a.Value)
		case "inserted":
			s.Inserted = toInt(a.Value)
		case "running":
			s.Running = toInt(a.Value)
		case "waiting":
			s.Waiting = toInt(a.Value)
		case "ended":
			s.Ended = toInt(a.Value)
		case "teleports":
			s.Teleports = toInt(a.Value)
		case "meanTravelTime":
			s.MeanTravelTime = toFloat(a.Value)
		case "meanWaitingTime":
			s.MeanWaitingTime = toFloat(a.Value)
		case "halting":
			s.Halting = toInt(a.Value)
		}
	}
	return s
}

// TripCO2 aggregates CO2_abs over the <tripinfo> elements of
// tripinfo.xml. Trips without an emissions record count as missing rather
// than as zero emissions.
type TripCO2 struct {
	TripCount   int     `json:"trip_count"`
	WithValue   int     `json:"co2_trip_count_with_value"`
	Missing     int     `json:"co2_trip_count_missing"`
	Total       float64 `json:"co2_total_abs"`
	MeanPerTrip float64 `json:"co2_mean_abs_per_trip"`
}

// ParseTripinfoCO2 reads tripinfo.xml and sums absolute CO2 per trip.
func ParseTripinfoCO2(path string) (TripCO2, error) {
	f, err := os.Open(path)
	if err != nil {
		return TripCO2{}, fmt.Errorf("tripinfo: %w", err)
	}
	defer f.Close() //nolint:errcheck

	dec := xml.NewDecoder(f)
	var (
		agg     TripCO2
		inTrip  bool
		tripHad bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return TripCO2{}, fmt.Errorf("tripinfo: parsing %s: %w", path, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tripinfo":
				agg.TripCount++
				inTrip = true
				tripHad = false
			case "emissions":
				if !inTrip {
					continue
				}
				for _, a := range t.Attr {
					if a.Name.Local != "CO2_abs" || a.Value == "" {
						continue
					}
					if v, err := strconv.ParseFloat(a.Value, 64); err == nil {
						agg.Total += v
						agg.WithValue++
						tripHad = true
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "tripinfo" && inTrip {
				if !tripHad {
					agg.Missing++
				}
				inTrip = false
			}
		}
	}
	if agg.WithValue > 0 {
		agg.MeanPerTrip = agg.Total / float64(agg.WithValue)
	}
	return agg, nil
}

// Document is the consolidated metrics.json content for one run.
type Document struct {
	Algo   string `json:"algo"`
	RunDir string `json:"run_dir"`
	SummaryStep
	TripCO2
	CO2Present bool `json:"co2_present"`
}

// Extract reads a run directory's XML outputs and writes metrics.json
// next to them. summary.xml is required; tripinfo.xml is optional and its
// absence leaves the CO2 aggregates at zero with CO2Present false.
func Extract(runDir, algo string) (Document, error) {
	doc := Document{Algo: algo, RunDir: runDir}

	summary, err := ParseSummaryLastStep(filepath.Join(runDir, "summary.xml"))
	if err != nil {
		return doc, err
	}
	doc.SummaryStep = summary

	tripinfoPath := filepath.Join(runDir, "tripinfo.xml")
	if _, err := os.Stat(tripinfoPath); err == nil {
		co2, err := ParseTripinfoCO2(tripinfoPath)
		if err != nil {
			return doc, err
		}
		doc.TripCO2 = co2
		doc.CO2Present = co2.WithValue > 0
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return doc, fmt.Errorf("metrics: marshaling: %w", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "metrics.json"), data, 0o644); err != nil {
		return doc, fmt.Errorf("metrics: writing: %w", err)
	}
	return doc, nil
}

func toInt(s string) int {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func toFloat(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0
}
