package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestAngularRangeContains(t *testing.T) {
	r := NewRange(3, 6)

	tests := []struct {
		name     string
		i        int
		expected bool
	}{
		{"before start", 2, false},
		{"start (inclusive)", 3, true},
		{"inside", 4, true},
		{"last segment", 5, true},
		{"end (exclusive)", 6, false},
		{"after end", 7, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.i); got != tc.expected {
				t.Errorf("Contains(%d) = %v, expected %v", tc.i, got, tc.expected)
			}
		})
	}
}

func TestAngularRangeEmptyNeverContains(t *testing.T) {
	r := NewRange(4, 4)
	if !r.Empty() {
		t.Error("Empty() should be true for [4,4)")
	}
	if r.Contains(4) {
		t.Error("Contains(4) should be false for an empty range")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", r.Len())
	}
}

func TestAngularRangeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AngularRange
		expected bool
	}{
		{"disjoint", NewRange(0, 3), NewRange(5, 8), false},
		{"adjacent", NewRange(0, 3), NewRange(3, 6), false},
		{"overlapping", NewRange(0, 4), NewRange(3, 6), true},
		{"contained", NewRange(0, 10), NewRange(2, 3), true},
		{"empty", NewRange(2, 2), NewRange(0, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAngularRangeWithin(t *testing.T) {
	if !NewRange(0, 36).Within(36) {
		t.Error("[0,36) should fit a 36-segment ring")
	}
	if NewRange(30, 37).Within(36) {
		t.Error("[30,37) should not fit a 36-segment ring")
	}
	if NewRange(-1, 2).Within(36) {
		t.Error("negative start should not fit")
	}
	if NewRange(5, 4).Within(36) {
		t.Error("inverted range should not fit")
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-720, 0},
	}

	for _, tc := range tests {
		if got := NormalizeDegrees(tc.in); got != tc.expected {
			t.Errorf("NormalizeDegrees(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	cfgErr := fmt.Errorf("setup: %w", &ConfigurationError{
		Component: "selector",
		Field:     "weights",
		Reason:    "must sum to 100",
		Expected:  "100",
		Actual:    "95",
	})
	if !IsConfiguration(cfgErr) {
		t.Error("IsConfiguration() should see through wrapping")
	}
	if IsSequencing(cfgErr) {
		t.Error("IsSequencing() should be false for a configuration error")
	}

	var target *ConfigurationError
	if !errors.As(cfgErr, &target) || target.Actual != "95" {
		t.Errorf("errors.As() did not recover the actual sum, got %+v", target)
	}

	seqErr := &SequencingError{Component: "app", Op: "Start", Reason: "called twice"}
	if !IsSequencing(seqErr) {
		t.Error("IsSequencing() should be true")
	}
	if seqErr.Error() != "app: Start: called twice" {
		t.Errorf("Error() = %q", seqErr.Error())
	}
}

func TestStepClock(t *testing.T) {
	c := NewStepClock()
	c.Advance(100)
	c.Advance(-50)
	if c.Now() != 100 {
		t.Errorf("Now() = %v, expected 100ns", c.Now())
	}
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now() after Reset() = %v, expected 0", c.Now())
	}
}
