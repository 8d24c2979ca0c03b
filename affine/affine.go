// Package affine implements Transform1D, the one-dimensional affine map
// x ↦ scale·x + offset that backs [mapping.Affine]; packages mapping and
// topology sample it onto two-knot linear curves where an affine piece is
// combined with linear ones.
//
// Composition and inversion follow the standard function-composition rule:
// (outer ∘ inner).scale = outer.scale · inner.scale,
// (outer ∘ inner).offset = outer.scale · inner.offset + outer.offset.
package affine

import (
	"errors"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
)

// Sentinel errors for affine operations.
var (
	// ErrNonInvertible indicates Inverse was called on a Transform1D with
	// Scale == 0.
	ErrNonInvertible = errors.New("affine: non-invertible transform (scale=0)")
)

// Transform1D is the pair (Offset, Scale). Identity has Scale == 1; New and
// the zero value can carry Scale == 0, and such a transform is
// non-invertible (Inverse returns ErrNonInvertible rather than a silently
// wrong inverse).
type Transform1D struct {
	Offset ordinate.Ord
	Scale  ordinate.Ord
}

// Identity is the neutral transform x ↦ x.
var Identity = Transform1D{Offset: 0, Scale: 1}

// New constructs a Transform1D. Scale == 0 is accepted here (the transform
// is simply non-invertible); invertibility is only checked by Inverse.
func New(offset, scale ordinate.Ord) Transform1D {
	return Transform1D{Offset: offset, Scale: scale}
}

// Apply evaluates scale·x + offset.
func (t Transform1D) Apply(x ordinate.Ord) ordinate.Ord {
	return t.Scale.Mul(x).Add(t.Offset)
}

// ApplyInterval maps iv's endpoints through Apply and reorders them so the
// result satisfies Start <= End, which matters for negative Scale.
func (t Transform1D) ApplyInterval(iv interval.ContinuousInterval) interval.ContinuousInterval {
	a := t.Apply(iv.Start)
	b := t.Apply(iv.End)
	if a <= b {
		return interval.ContinuousInterval{Start: a, End: b}
	}
	return interval.ContinuousInterval{Start: b, End: a}
}

// Inverse returns the transform t⁻¹ such that t.Inverse().Apply(t.Apply(x))
// == x for all finite x. Fails with ErrNonInvertible when Scale == 0.
func (t Transform1D) Inverse() (Transform1D, error) {
	if t.Scale == 0 {
		return Transform1D{}, ErrNonInvertible
	}
	invScale := 1 / t.Scale
	return Transform1D{
		Offset: -t.Offset * invScale,
		Scale:  invScale,
	}, nil
}

// Compose returns outer ∘ inner: applying the result to x is the same as
// inner.Apply(x) followed by outer.Apply.
func Compose(outer, inner Transform1D) Transform1D {
	return Transform1D{
		Scale:  outer.Scale.Mul(inner.Scale),
		Offset: outer.Scale.Mul(inner.Offset).Add(outer.Offset),
	}
}

// Equal is strict field equality.
func (t Transform1D) Equal(other Transform1D) bool {
	return t.Offset == other.Offset && t.Scale == other.Scale
}

// Near is ε-equality on both fields.
func (t Transform1D) Near(other Transform1D, eps ordinate.Ord) bool {
	return t.Offset.Near(other.Offset, eps) && t.Scale.Near(other.Scale, eps)
}
