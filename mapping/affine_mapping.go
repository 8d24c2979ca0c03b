package mapping

import (
	"github.com/katalvlaran/topology/affine"
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/katalvlaran/topology/projection"
)

// Affine is a mapping backed by a single [affine.Transform1D] over a bounded
// input interval.
type Affine struct {
	Bounds interval.ContinuousInterval
	Xform  affine.Transform1D
}

// NewAffine constructs an Affine mapping. Fails with ErrNonInvertible if
// xform.Scale == 0 — every mapping variant must be 1→1.
func NewAffine(bounds interval.ContinuousInterval, xform affine.Transform1D) (Affine, error) {
	if xform.Scale == 0 {
		return Affine{}, ErrNonInvertible
	}
	return Affine{Bounds: bounds, Xform: xform}, nil
}

// IdentityInfinite returns the default infinite identity mapping: an
// unbounded interval carrying the identity transform.
func IdentityInfinite() Affine {
	return Affine{Bounds: interval.INF, Xform: affine.Identity}
}

// IdentityOver returns the identity mapping restricted to bounds.
func IdentityOver(bounds interval.ContinuousInterval) Affine {
	return Affine{Bounds: bounds, Xform: affine.Identity}
}

// InputBounds returns m.Bounds.
func (m Affine) InputBounds() interval.ContinuousInterval { return m.Bounds }

// OutputBounds returns the image of m.Bounds under m.Xform.
func (m Affine) OutputBounds() (interval.ContinuousInterval, bool) {
	return m.Xform.ApplyInterval(m.Bounds), true
}

// Project evaluates m.Xform.Apply(x), accepting x == m.Bounds.End.
func (m Affine) Project(x ordinate.Ord) projection.Result {
	if !boundsIncludes(m.Bounds, x) {
		return projection.OutOfBounds
	}
	return projection.SuccessOrdinate(m.Xform.Apply(x))
}

// ProjectInv evaluates the inverse transform at y, accepting y ==
// OutputBounds().End.
func (m Affine) ProjectInv(y ordinate.Ord) projection.Result {
	outBounds, _ := m.OutputBounds()
	if !boundsIncludes(outBounds, y) {
		return projection.OutOfBounds
	}
	inv, err := m.Xform.Inverse()
	if err != nil {
		return projection.OutOfBounds
	}
	return projection.SuccessOrdinate(inv.Apply(y))
}

// Clone returns a copy of m.
func (m Affine) Clone() Mapping { return Affine{Bounds: m.Bounds, Xform: m.Xform} }

// ShrinkToInputInterval restricts m to t ∩ m.Bounds.
func (m Affine) ShrinkToInputInterval(t interval.ContinuousInterval) Mapping {
	clipped, ok := interval.Intersect(m.Bounds, t)
	if !ok {
		return Empty{DefinedRange: interval.ZERO}
	}
	return Affine{Bounds: clipped, Xform: m.Xform}
}

// ShrinkToOutputInterval projects t back to input space via the inverse
// transform and delegates to ShrinkToInputInterval.
func (m Affine) ShrinkToOutputInterval(t interval.ContinuousInterval) Mapping {
	inv, err := m.Xform.Inverse()
	if err != nil {
		return Empty{DefinedRange: interval.ZERO}
	}
	return m.ShrinkToInputInterval(inv.ApplyInterval(t))
}

// SplitAtInputOrd splits m into two Affine mappings (same Xform, disjoint
// Bounds) meeting at x.
func (m Affine) SplitAtInputOrd(x ordinate.Ord) (Mapping, Mapping, error) {
	if !(m.Bounds.Start < x && x < m.Bounds.End) {
		return nil, nil, ErrSplitNotInterior
	}
	left := Affine{Bounds: interval.ContinuousInterval{Start: m.Bounds.Start, End: x}, Xform: m.Xform}
	right := Affine{Bounds: interval.ContinuousInterval{Start: x, End: m.Bounds.End}, Xform: m.Xform}
	return left, right, nil
}

// SplitAtEachInputOrd splits m at every in-bounds point of xs.
func (m Affine) SplitAtEachInputOrd(xs []ordinate.Ord) ([]Mapping, error) {
	return splitAtEachGeneric(m, xs)
}

// Invert swaps input and output: the new bounds are the old output bounds,
// and the new transform is m.Xform's inverse.
func (m Affine) Invert() (Mapping, error) {
	inv, err := m.Xform.Inverse()
	if err != nil {
		return nil, ErrNonInvertible
	}
	newBounds, _ := m.OutputBounds()
	return Affine{Bounds: newBounds, Xform: inv}, nil
}

var _ Mapping = Affine{}
