// Package ring partitions a circular ring of equal angular segments into
// solid, gap and hazard zones.
//
// All ranges are half-open: segment i belongs to [Start, End) when
// Start <= i < End. Gap takes precedence over hazard, hazard over solid.
package ring

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/randutil"
)

// Variant tags one angular segment of a built obstacle.
type Variant int

const (
	Solid Variant = iota
	Gap
	Hazard
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case Solid:
		return "solid"
	case Gap:
		return "gap"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// LaneWidth returns the width of the narrowest lane when a ring of
// segments is split into gaps lanes.
func LaneWidth(segments, gaps int) int {
	if gaps <= 0 {
		return 0
	}
	return segments / gaps
}

// LaneOffset returns the first segment of lane i. The remainder of an
// uneven split is given to lane 0, so every later lane is shifted by it.
func LaneOffset(segments, gaps, i int) int {
	width := LaneWidth(segments, gaps)
	if i == 0 {
		return 0
	}
	return i*width + segments%gaps
}

// ReplicateGaps copies base into each of gaps evenly spaced lanes so the
// openings are spread around the ring instead of clustered.
func ReplicateGaps(segments, gaps int, base core.AngularRange) ([]core.AngularRange, error) {
	if segments < 1 {
		return nil, configErr("segments", "must be at least 1", "", fmt.Sprint(segments))
	}
	if gaps < 1 || gaps > segments {
		return nil, configErr("total_gaps", "must be between 1 and the segment count",
			fmt.Sprintf("1..%d", segments), fmt.Sprint(gaps))
	}
	width := LaneWidth(segments, gaps)
	if base.Start < 0 || base.Start > base.End || base.End > width {
		return nil, configErr("gap_range", "base range must fit inside one lane",
			fmt.Sprintf("within [0,%d)", width), base.String())
	}

	ranges := make([]core.AngularRange, gaps)
	for i := 0; i < gaps; i++ {
		ranges[i] = base.Shift(LaneOffset(segments, gaps, i))
	}
	return ranges, nil
}

// SolidRanges returns the complement of gaps inside [0, segments).
// Gaps are walked in ascending start order; every uncovered interval becomes
// a solid range, plus a trailing one up to segments when nonzero.
func SolidRanges(gaps []core.AngularRange, segments int) []core.AngularRange {
	sorted := make([]core.AngularRange, 0, len(gaps))
	for _, g := range gaps {
		if !g.Empty() {
			sorted = append(sorted, g)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var solids []core.AngularRange
	current := 0
	for _, g := range sorted {
		if current < g.Start {
			solids = append(solids, core.NewRange(current, g.Start))
		}
		if g.End > current {
			current = g.End
		}
	}
	if current < segments {
		solids = append(solids, core.NewRange(current, segments))
	}
	return solids
}

// Classify assigns a variant to every segment in [0, segments).
func Classify(segments int, gaps []core.AngularRange, hazard core.AngularRange) []Variant {
	variants := make([]Variant, segments)
	for i := range variants {
		switch {
		case inAny(i, gaps):
			variants[i] = Gap
		case hazard.Contains(i):
			variants[i] = Hazard
		default:
			variants[i] = Solid
		}
	}
	return variants
}

// Count returns how many segments carry the given variant.
func Count(variants []Variant, v Variant) int {
	n := 0
	for _, got := range variants {
		if got == v {
			n++
		}
	}
	return n
}

// BaseRange draws the base gap placement [0, n) with n uniform in span.
func BaseRange(span core.IntRange, src randutil.Source) core.AngularRange {
	return core.NewRange(0, src.Int(span.Min, span.Max))
}

func inAny(i int, ranges []core.AngularRange) bool {
	for _, r := range ranges {
		if r.Contains(i) {
			return true
		}
	}
	return false
}

func configErr(field, reason, expected, actual string) error {
	return &core.ConfigurationError{
		Component: "ring",
		Field:     field,
		Reason:    reason,
		Expected:  expected,
		Actual:    actual,
	}
}
