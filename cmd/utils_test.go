package cmd

import (
	"reflect"
	"testing"
)

func TestParseIndices(t *testing.T) {
	got, err := parseIndices([]string{"3", "1", "10"})
	if err != nil {
		t.Fatalf("parseIndices failed: %v", err)
	}
	if want := []int{3, 1, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("parseIndices = %v, want %v", got, want)
	}

	// Zero and negatives parse fine here; the store ignores them as
	// out-of-range rather than erroring.
	got, err = parseIndices([]string{"0", "-2"})
	if err != nil {
		t.Fatalf("parseIndices failed: %v", err)
	}
	if want := []int{0, -2}; !reflect.DeepEqual(got, want) {
		t.Errorf("parseIndices = %v, want %v", got, want)
	}

	if _, err := parseIndices([]string{"two"}); err == nil {
		t.Errorf("non-numeric input should be rejected")
	}
}

func TestFormatIndices(t *testing.T) {
	if got := formatIndices([]int{2, 5}); got != "2, 5" {
		t.Errorf("formatIndices = %q", got)
	}
}
