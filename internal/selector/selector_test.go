package selector

import (
	"math"
	"testing"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/randutil"
)

// countingSource records how many draws were consumed.
type countingSource struct {
	inner randutil.Source
	draws int
}

func (c *countingSource) Float(min, max float64) float64 {
	c.draws++
	return c.inner.Float(min, max)
}

func (c *countingSource) Int(min, max int) int {
	c.draws++
	return c.inner.Int(min, max)
}

func TestPickApproximatesWeights(t *testing.T) {
	table := New([]Entry[string]{
		{Weight: 50, Payload: "wide"},
		{Weight: 30, Payload: "double"},
		{Weight: 15, Payload: "triple"},
		{Weight: 5, Payload: "narrow"},
	})
	src := randutil.New(2024)

	const draws = 20000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		got, err := table.Pick(src)
		if err != nil {
			t.Fatalf("Pick() failed: %v", err)
		}
		counts[got]++
	}

	expected := map[string]float64{"wide": 0.50, "double": 0.30, "triple": 0.15, "narrow": 0.05}
	for name, p := range expected {
		freq := float64(counts[name]) / draws
		if math.Abs(freq-p) > 0.02 {
			t.Errorf("%s frequency = %.3f, expected %.2f ±0.02", name, freq, p)
		}
	}
}

func TestPickRejectsBadSums(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{"sum 95", []float64{50, 45}},
		{"sum 101", []float64{50, 51}},
		{"empty", nil},
		{"negative weight", []float64{110, -10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries := make([]Entry[int], len(tc.weights))
			for i, w := range tc.weights {
				entries[i] = Entry[int]{Weight: w, Payload: i}
			}
			table := New(entries)
			src := &countingSource{inner: randutil.New(1)}

			_, err := table.Pick(src)
			if !core.IsConfiguration(err) {
				t.Fatalf("Pick() error = %v, expected ConfigurationError", err)
			}
			if src.draws != 0 {
				t.Errorf("Pick() consumed %d draws before failing, expected 0", src.draws)
			}

			// Cached: still failing, still no draws
			if _, err := table.Pick(src); err == nil || src.draws != 0 {
				t.Error("second Pick() should fail again without drawing")
			}
		})
	}
}

func TestBadSumReportsExpectedAndActual(t *testing.T) {
	table := New([]Entry[int]{{Weight: 60}, {Weight: 35}})
	err := table.Validate()

	cfgErr, ok := err.(*core.ConfigurationError)
	if !ok {
		t.Fatalf("Validate() error = %T, expected *core.ConfigurationError", err)
	}
	if cfgErr.Expected != "100" || cfgErr.Actual != "95" {
		t.Errorf("error reports expected=%q actual=%q, expected 100/95", cfgErr.Expected, cfgErr.Actual)
	}
}

func TestSelectCumulativeBoundaries(t *testing.T) {
	table := New([]Entry[string]{
		{Weight: 25, Payload: "a"},
		{Weight: 25, Payload: "b"},
		{Weight: 50, Payload: "c"},
	})
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	tests := []struct {
		roll     float64
		expected string
	}{
		{0, "a"},
		{25, "a"}, // cumulative >= roll
		{25.0001, "b"},
		{50, "b"},
		{99.99, "c"},
		{100.5, "c"}, // drift past every sum falls back to the last entry
	}
	for _, tc := range tests {
		if got := table.Select(tc.roll); got != tc.expected {
			t.Errorf("Select(%v) = %q, expected %q", tc.roll, got, tc.expected)
		}
	}
}

func TestToleratesFloatDrift(t *testing.T) {
	table := New([]Entry[int]{
		{Weight: 33.3333, Payload: 0},
		{Weight: 33.3333, Payload: 1},
		{Weight: 33.3334, Payload: 2},
	})
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() should accept a sum within epsilon, got %v", err)
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry[int]{{Weight: 100, Payload: 1}}
	table := New(entries)
	entries[0].Payload = 2

	if got := table.Select(10); got != 1 {
		t.Errorf("Select() = %d, table should not alias the caller's slice", got)
	}
}

func TestSelectSkipsZeroWeight(t *testing.T) {
	table := New([]Entry[string]{
		{Weight: 0, Payload: "never"},
		{Weight: 100, Payload: "always"},
		{Weight: 0, Payload: "tail"},
	})
	for _, roll := range []float64{0, 50, 100, 100.5} {
		if got := table.Select(roll); got != "always" {
			t.Errorf("Select(%v) = %q, expected %q", roll, got, "always")
		}
	}
}
