package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIndices converts command arguments into 1-based task positions.
// Non-numeric input is a usage error; whether a number actually addresses a
// task is the store's concern (out-of-range positions are ignored there).
func parseIndices(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid task index %q: expected a number", a)
		}
		out = append(out, n)
	}
	return out, nil
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
