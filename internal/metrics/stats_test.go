package metrics

import (
	"math"
	"testing"

	"github.com/sumo-tools/sumoeval/internal/models"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5.0}, 5.0},
		{"multiple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"all_same", []float64{7, 7, 7}, 7.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Mean(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestKnownValuesSkipsAbsentRows(t *testing.T) {
	w1, w2 := 10.0, 30.0
	rows := []models.ComparisonRow{
		{Seed: 1, Records: map[models.Method]models.Record{
			models.MethodPSO: {Method: models.MethodPSO, MeanWaitingTime: &w1},
		}},
		{Seed: 2, Records: map[models.Method]models.Record{
			models.MethodPSO: {Method: models.MethodPSO}, // absent
		}},
		{Seed: 3, Records: map[models.Method]models.Record{
			models.MethodPSO: {Method: models.MethodPSO, MeanWaitingTime: &w2},
		}},
	}

	values := KnownValues(rows, models.MethodPSO, WaitingTimeOf)
	if len(values) != 2 {
		t.Fatalf("expected 2 known values, got %d", len(values))
	}
	if !approxEqual(Mean(values), 20.0) {
		t.Errorf("mean over known values = %f, want 20", Mean(values))
	}
}
