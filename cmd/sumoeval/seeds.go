package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSeeds parses a user-supplied seed list ("1,2,3" or "1 2 3").
// Every token must be an integer; validation happens here, before
// anything reaches the comparison core. Duplicates are kept — the
// comparator removes them.
func parseSeeds(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no seeds given")
	}

	seeds := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: must be an integer", f)
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}
