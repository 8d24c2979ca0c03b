// Package mapping implements the Mapping algebra: a
// tagged family of right-met, individually monotonic, 1→1 functions —
// Empty, Affine, LinearMonotonic — sharing one contract for forward/inverse
// projection, trimming in either space, splitting, cloning, and inversion,
// plus the Join operator that composes two mappings through a shared
// intermediate space.
package mapping

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/katalvlaran/topology/projection"
)

// Sentinel errors for mapping operations.
var (
	// ErrNonInvertible indicates Invert was called on a mapping that is not
	// 1→1 (an Affine with Scale == 0, or a LinearMonotonic degenerate to a
	// single output value).
	ErrNonInvertible = errors.New("mapping: not invertible")

	// ErrSplitNotInterior indicates SplitAtInputOrd was asked to split at a
	// point that is not strictly interior to the mapping's input bounds.
	ErrSplitNotInterior = errors.New("mapping: split point not strictly interior")

	// ErrNoOverlap indicates a caller explicitly required a non-empty
	// shrink result (see ShrinkToInputIntervalStrict) but the requested
	// interval does not overlap the mapping's input bounds.
	ErrNoOverlap = errors.New("mapping: no overlap with requested interval")
)

// Mapping is the uniform contract shared by Empty, Affine, and
// LinearMonotonic.
type Mapping interface {
	// InputBounds returns the mapping's domain.
	InputBounds() interval.ContinuousInterval

	// OutputBounds returns the mapping's range, and false for Empty (which
	// has no output; treat as equal to the input range).
	OutputBounds() (interval.ContinuousInterval, bool)

	// Project evaluates the mapping forward at x. Empty always returns
	// OutOfBounds. Accepts x == InputBounds().End (the endpoint rule).
	Project(x ordinate.Ord) projection.Result

	// ProjectInv evaluates the mapping's inverse at y. Accepts y ==
	// OutputBounds().End symmetrically to Project's endpoint rule.
	ProjectInv(y ordinate.Ord) projection.Result

	// Clone returns a deep copy.
	Clone() Mapping

	// ShrinkToInputInterval restricts the mapping to t ∩ InputBounds(),
	// returning Empty if the intersection is empty.
	ShrinkToInputInterval(t interval.ContinuousInterval) Mapping

	// ShrinkToOutputInterval restricts the mapping by projecting t back to
	// input via the inverse and delegating to ShrinkToInputInterval.
	ShrinkToOutputInterval(t interval.ContinuousInterval) Mapping

	// SplitAtInputOrd splits the mapping into two mappings meeting at x.
	// Fails with ErrSplitNotInterior if x is not strictly interior.
	SplitAtInputOrd(x ordinate.Ord) (Mapping, Mapping, error)

	// SplitAtEachInputOrd splits at every ascending, in-bounds,
	// de-duplicated point of xs.
	SplitAtEachInputOrd(xs []ordinate.Ord) ([]Mapping, error)

	// Invert returns the inverse mapping (input/output roles swapped).
	Invert() (Mapping, error)
}

// boundsIncludes applies the endpoint rule: b.Overlaps(x) is
// true for every point in the right-open interval except its own End;
// point projection additionally accepts x == b.End.
func boundsIncludes(b interval.ContinuousInterval, x ordinate.Ord) bool {
	return b.Overlaps(x) || x == b.End
}

// ShrinkToInputIntervalStrict restricts m to t the same way
// ShrinkToInputInterval does, but fails with ErrNoOverlap instead of
// silently returning Empty when t does not overlap m.InputBounds() at all —
// for callers that require a non-empty result and want that requirement
// enforced rather than discovered later as an unexpected Empty.
func ShrinkToInputIntervalStrict(m Mapping, t interval.ContinuousInterval) (Mapping, error) {
	if _, ok := interval.Intersect(m.InputBounds(), t); !ok {
		return nil, ErrNoOverlap
	}
	return m.ShrinkToInputInterval(t), nil
}

// isEmpty reports whether m is the Empty variant.
func isEmpty(m Mapping) bool {
	_, ok := m.(Empty)
	return ok
}

// splitAtEachGeneric is the shared SplitAtEachInputOrd implementation for
// variants (Empty, Affine) that have no dedicated batch-split primitive: it
// filters xs to ascending, in-bounds, de-duplicated interior points and
// repeatedly calls SplitAtInputOrd.
func splitAtEachGeneric(m Mapping, xs []ordinate.Ord) ([]Mapping, error) {
	bounds := m.InputBounds()
	pts := filterAscendingInterior(xs, bounds, ordinate.DefaultEpsilon)
	if len(pts) == 0 {
		return []Mapping{m}, nil
	}

	out := make([]Mapping, 0, len(pts)+1)
	remaining := m
	for _, x := range pts {
		left, right, err := remaining.SplitAtInputOrd(x)
		if err != nil {
			return nil, fmt.Errorf("mapping: split_at_each_input_ord: %w", err)
		}
		out = append(out, left)
		remaining = right
	}
	out = append(out, remaining)
	return out, nil
}

// filterAscendingInterior sorts xs ascending, drops points outside the
// strict interior of bounds, and collapses near-duplicates (within eps).
func filterAscendingInterior(xs []ordinate.Ord, bounds interval.ContinuousInterval, eps ordinate.Ord) []ordinate.Ord {
	var pts []ordinate.Ord
	for _, x := range xs {
		if x > bounds.Start && x < bounds.End {
			pts = append(pts, x)
		}
	}
	sortOrds(pts)
	deduped := pts[:0]
	for i, x := range pts {
		if i == 0 || !x.Near(pts[i-1], eps) {
			deduped = append(deduped, x)
		}
	}
	return deduped
}

// sortDedupe sorts xs ascending and collapses near-duplicates (within eps),
// with no bounds filtering — used by the lin∘lin Join algorithm to merge
// two curves' knot-input sets.
func sortDedupe(xs []ordinate.Ord, eps ordinate.Ord) []ordinate.Ord {
	sortOrds(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || !x.Near(xs[i-1], eps) {
			out = append(out, x)
		}
	}
	return out
}

func sortOrds(xs []ordinate.Ord) {
	// Simple insertion sort: split-point lists are always small (bounded by
	// the number of knots/segments in practice), so an O(n²) sort keeps
	// this dependency-free without mattering for performance.
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// Empty represents a hole in input space: input is in DefinedRange, but
// there is no output.
type Empty struct {
	DefinedRange interval.ContinuousInterval
}

// NewEmpty constructs an Empty mapping over the given defined range.
func NewEmpty(definedRange interval.ContinuousInterval) Empty {
	return Empty{DefinedRange: definedRange}
}

// InputBounds returns e.DefinedRange.
func (e Empty) InputBounds() interval.ContinuousInterval { return e.DefinedRange }

// OutputBounds always reports false: Empty has no output.
func (e Empty) OutputBounds() (interval.ContinuousInterval, bool) {
	return interval.ContinuousInterval{}, false
}

// Project always returns OutOfBounds.
func (e Empty) Project(ordinate.Ord) projection.Result { return projection.OutOfBounds }

// ProjectInv always returns OutOfBounds.
func (e Empty) ProjectInv(ordinate.Ord) projection.Result { return projection.OutOfBounds }

// Clone returns a copy of e (Empty has no heap-backed state to deep-copy).
func (e Empty) Clone() Mapping { return Empty{DefinedRange: e.DefinedRange} }

// ShrinkToInputInterval restricts e's defined range to t, or returns an
// Empty over the zero interval if disjoint.
func (e Empty) ShrinkToInputInterval(t interval.ContinuousInterval) Mapping {
	clipped, ok := interval.Intersect(e.DefinedRange, t)
	if !ok {
		return Empty{DefinedRange: interval.ZERO}
	}
	return Empty{DefinedRange: clipped}
}

// ShrinkToOutputInterval is a no-op for Empty: there is no output to
// restrict by, and no inverse to project t back through.
func (e Empty) ShrinkToOutputInterval(interval.ContinuousInterval) Mapping {
	return e.Clone()
}

// SplitAtInputOrd splits e's defined range at x.
func (e Empty) SplitAtInputOrd(x ordinate.Ord) (Mapping, Mapping, error) {
	if !(e.DefinedRange.Start < x && x < e.DefinedRange.End) {
		return nil, nil, ErrSplitNotInterior
	}
	left := Empty{DefinedRange: interval.ContinuousInterval{Start: e.DefinedRange.Start, End: x}}
	right := Empty{DefinedRange: interval.ContinuousInterval{Start: x, End: e.DefinedRange.End}}
	return left, right, nil
}

// SplitAtEachInputOrd splits e at every in-bounds point of xs.
func (e Empty) SplitAtEachInputOrd(xs []ordinate.Ord) ([]Mapping, error) {
	return splitAtEachGeneric(e, xs)
}

// Invert returns e unchanged: an Empty mapping carries no orientation to
// swap.
func (e Empty) Invert() (Mapping, error) { return e.Clone(), nil }

var _ Mapping = Empty{}
