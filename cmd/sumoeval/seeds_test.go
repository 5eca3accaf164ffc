package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeeds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"comma_separated", "1,2,3", []int{1, 2, 3}, false},
		{"space_separated", "1 2 3", []int{1, 2, 3}, false},
		{"mixed_separators", "1, 2,\t3", []int{1, 2, 3}, false},
		{"single", "42", []int{42}, false},
		{"negative", "-1", []int{-1}, false},
		{"duplicates_kept", "1,1,2", []int{1, 1, 2}, false},
		{"empty", "", nil, true},
		{"only_separators", ", ,", nil, true},
		{"non_numeric", "1,two,3", nil, true},
		{"float", "1.5", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSeeds(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
