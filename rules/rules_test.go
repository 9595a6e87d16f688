package rules

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseConway(t *testing.T) {
	r, err := Parse("B3/S23")
	if err != nil {
		t.Fatalf("Parse(B3/S23) returned error: %v", err)
	}
	if got := r.Born(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("Born() = %v, expected [3]", got)
	}
	if got := r.Survive(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("Survive() = %v, expected [2 3]", got)
	}
	if r.String() != "B3/S23" {
		t.Errorf("String() = %q, expected B3/S23", r.String())
	}
}

func TestParseLowercaseHighLife(t *testing.T) {
	r, err := Parse("b36/s23")
	if err != nil {
		t.Fatalf("Parse(b36/s23) returned error: %v", err)
	}
	if got := r.Born(); !reflect.DeepEqual(got, []int{3, 6}) {
		t.Errorf("Born() = %v, expected [3 6]", got)
	}
	if got := r.Survive(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("Survive() = %v, expected [2 3]", got)
	}
}

func TestParseEmptyDigitList(t *testing.T) {
	r, err := Parse("B2/S")
	if err != nil {
		t.Fatalf("Parse(B2/S) returned error: %v", err)
	}
	if got := r.Survive(); got != nil {
		t.Errorf("Survive() = %v, expected empty", got)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"spam", "B3S23", "/S23", "B9/S23", ""} {
		if _, err := Parse(s); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("Parse(%q) error = %v, expected ErrInvalidRule", s, err)
		}
	}
}

func TestApply(t *testing.T) {
	r, err := Parse("B3/S23")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		alive     bool
		neighbors int
		want      bool
	}{
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{false, 2, false},
		{false, 3, true},
		{false, 8, false},
	}
	for _, tt := range tests {
		if got := r.Apply(tt.alive, tt.neighbors); got != tt.want {
			t.Errorf("Apply(%v, %d) = %v, expected %v", tt.alive, tt.neighbors, got, tt.want)
		}
	}
}
