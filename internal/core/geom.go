// Package core provides fundamental types and utilities shared by the
// obstacle pipeline and its collaborators. It has no external dependencies
// so gameplay logic stays pure and testable.
package core

import (
	"fmt"
	"math"
)

// AngularRange is a half-open index range [Start, End) over the equal
// angular segments of a ring.
type AngularRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// NewRange creates a range covering [start, end).
func NewRange(start, end int) AngularRange {
	return AngularRange{Start: start, End: end}
}

// Len returns the number of segments covered by the range.
func (r AngularRange) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers no segment.
func (r AngularRange) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether segment i lies in [Start, End).
// Every membership test in the module goes through here.
func (r AngularRange) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Shift returns the range moved by offset segments.
func (r AngularRange) Shift(offset int) AngularRange {
	return AngularRange{Start: r.Start + offset, End: r.End + offset}
}

// Overlaps returns true if both ranges share at least one segment.
func (r AngularRange) Overlaps(other AngularRange) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.Start < other.End && other.Start < r.End
}

// Within reports whether the range fits in a ring of the given size.
func (r AngularRange) Within(segments int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= segments
}

func (r AngularRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// IntRange is an inclusive integer interval used for random draws.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a half-open float interval [Min, Max) used for random draws.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Rect represents an axis-aligned rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
