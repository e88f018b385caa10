// Package selector picks one entry from a weighted table by cumulative
// probability roll.
package selector

import (
	"fmt"
	"math"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/randutil"
)

// TotalWeight is the sum every table must reach.
const TotalWeight = 100.0

// Epsilon is the tolerance allowed on the weight sum.
const Epsilon = 1e-3

// Entry pairs a selection weight with its payload.
type Entry[T any] struct {
	Weight  float64
	Payload T
}

// Table is an ordered, read-only weighted table.
// It is validated once, the first time a selection is needed.
type Table[T any] struct {
	entries   []Entry[T]
	validated bool
	err       error
}

// New creates a table over entries. The slice is copied.
func New[T any](entries []Entry[T]) *Table[T] {
	copied := make([]Entry[T], len(entries))
	copy(copied, entries)
	return &Table[T]{entries: copied}
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// At returns the payload of entry i in table order.
func (t *Table[T]) At(i int) T {
	return t.entries[i].Payload
}

// Validate checks that the table is non-empty, every weight is in
// [0, 100] and the weights sum to 100. The result is cached.
func (t *Table[T]) Validate() error {
	if t.validated {
		return t.err
	}
	t.validated = true
	t.err = t.check()
	return t.err
}

func (t *Table[T]) check() error {
	if len(t.entries) == 0 {
		return &core.ConfigurationError{
			Component: "selector",
			Field:     "entries",
			Reason:    "table is empty",
		}
	}
	sum := 0.0
	for i, e := range t.entries {
		if e.Weight < 0 || e.Weight > TotalWeight || math.IsNaN(e.Weight) {
			return &core.ConfigurationError{
				Component: "selector",
				Field:     fmt.Sprintf("entries[%d].weight", i),
				Reason:    "weight out of range",
				Expected:  "0..100",
				Actual:    fmt.Sprint(e.Weight),
			}
		}
		sum += e.Weight
	}
	if math.Abs(sum-TotalWeight) > Epsilon {
		return &core.ConfigurationError{
			Component: "selector",
			Field:     "weights",
			Reason:    "weights must sum to 100",
			Expected:  fmt.Sprint(TotalWeight),
			Actual:    fmt.Sprint(sum),
		}
	}
	return nil
}

// Pick draws one roll from src and returns the first payload whose
// cumulative weight reaches it. If float drift leaves the roll above every
// cumulative sum, the last entry is returned.
// An invalid table returns its ConfigurationError without drawing.
func (t *Table[T]) Pick(src randutil.Source) (T, error) {
	var zero T
	if err := t.Validate(); err != nil {
		return zero, err
	}
	roll := src.Float(0, TotalWeight)
	return t.Select(roll), nil
}

// Select resolves a roll in [0, 100) against a validated table.
// Zero-weight entries are never selected.
func (t *Table[T]) Select(roll float64) T {
	cumulative := 0.0
	last := len(t.entries) - 1
	for i, e := range t.entries {
		if e.Weight == 0 {
			continue
		}
		last = i
		cumulative += e.Weight
		if cumulative >= roll {
			return e.Payload
		}
	}
	return t.entries[last].Payload
}
