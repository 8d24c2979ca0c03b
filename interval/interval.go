// Package interval defines ContinuousInterval, the right-open [start, end)
// range over [ordinate.Ord] that every other layer of this module (affine
// bounds, Bézier extents, topology input/output bounds) is expressed in
// terms of.
//
// 🚀 What is a ContinuousInterval?
//
//	A connected, right-open subset [start, end) of the ordinate line, with
//	start <= end enforced at every constructor. start == end is the unique
//	empty "instant" interval (used, e.g., for a degenerate trim result).
//
// ✨ Key operations:
//   - Overlaps: point-in-interval test with the documented instant exception.
//   - Intersect: commutative, associative, idempotent meet; None on disjoint.
//   - Extend: commutative, associative, idempotent join (smallest interval
//     containing both).
//   - IsInstant: start == end.
package interval

import (
	"errors"

	"github.com/katalvlaran/topology/ordinate"
)

// Sentinel errors for interval operations.
var (
	// ErrInvalidBounds indicates a constructor was asked to build an
	// interval with end < start.
	ErrInvalidBounds = errors.New("interval: end before start")
)

// ContinuousInterval is the right-open range [Start, End).
type ContinuousInterval struct {
	Start ordinate.Ord
	End   ordinate.Ord
}

// ZERO is the unique empty interval [0,0).
var ZERO = ContinuousInterval{Start: 0, End: 0}

// INF is the unbounded interval [-Inf, +Inf).
var INF = ContinuousInterval{Start: ordinate.NegInf, End: ordinate.PosInf}

// New constructs [start, end). It fails with ErrInvalidBounds if
// end < start.
func New(start, end ordinate.Ord) (ContinuousInterval, error) {
	if end < start {
		return ContinuousInterval{}, ErrInvalidBounds
	}
	return ContinuousInterval{Start: start, End: end}, nil
}

// Instant constructs the zero-length interval [x, x).
func Instant(x ordinate.Ord) ContinuousInterval {
	return ContinuousInterval{Start: x, End: x}
}

// IsInstant reports whether the interval has zero length.
func (iv ContinuousInterval) IsInstant() bool {
	return iv.Start == iv.End
}

// Len returns End - Start (always >= 0 for a validly constructed interval).
func (iv ContinuousInterval) Len() ordinate.Ord {
	return iv.End - iv.Start
}

// Overlaps reports whether x falls within the interval.
//
// overlaps(x) ≡ (start <= x < end) ∨ (x == end ∧ start == end
// ∧ x == start) — i.e. a non-empty interval never contains its own End
// (right-open), but the unique empty instant interval is considered to
// overlap its own single point.
func (iv ContinuousInterval) Overlaps(x ordinate.Ord) bool {
	if iv.IsInstant() {
		return x == iv.Start
	}
	return iv.Start <= x && x < iv.End
}

// Intersect returns the overlap of a and b, and false if they are disjoint.
// a and b must each satisfy Start <= End (guaranteed by the constructors in
// this package).
func Intersect(a, b ContinuousInterval) (ContinuousInterval, bool) {
	start := ordinate.Max(a.Start, b.Start)
	end := ordinate.Min(a.End, b.End)
	if end < start {
		return ContinuousInterval{}, false
	}
	// Two non-instant intervals that only touch at a point (end == start)
	// produce the empty instant at that point, which is still a valid,
	// well-defined intersection (e.g. right-met adjacent mapping bounds).
	return ContinuousInterval{Start: start, End: end}, true
}

// Extend returns the smallest interval containing both a and b.
func Extend(a, b ContinuousInterval) ContinuousInterval {
	return ContinuousInterval{
		Start: ordinate.Min(a.Start, b.Start),
		End:   ordinate.Max(a.End, b.End),
	}
}

// Equal is strict field equality.
func (iv ContinuousInterval) Equal(other ContinuousInterval) bool {
	return iv.Start == other.Start && iv.End == other.End
}

// Near is ε-equality on both endpoints.
func (iv ContinuousInterval) Near(other ContinuousInterval, eps ordinate.Ord) bool {
	return iv.Start.Near(other.Start, eps) && iv.End.Near(other.End, eps)
}

// String renders iv for diagnostics.
func (iv ContinuousInterval) String() string {
	return "[" + iv.Start.String() + ", " + iv.End.String() + ")"
}
