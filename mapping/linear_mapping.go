package mapping

import (
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/katalvlaran/topology/projection"
)

// LinearMonotonic is a mapping backed by a [linear.Curve]: a piecewise-linear
// input-to-output relation that is monotonic in its input coordinate.
type LinearMonotonic struct {
	Curve linear.Curve
}

// NewLinearMonotonic wraps an already-validated linear.Curve as a Mapping.
func NewLinearMonotonic(c linear.Curve) LinearMonotonic {
	return LinearMonotonic{Curve: c}
}

// InputBounds returns m.Curve.ExtentsInput().
func (m LinearMonotonic) InputBounds() interval.ContinuousInterval {
	return m.Curve.ExtentsInput()
}

// OutputBounds returns m.Curve.ExtentsOutput().
func (m LinearMonotonic) OutputBounds() (interval.ContinuousInterval, bool) {
	return m.Curve.ExtentsOutput(), true
}

// Project evaluates m.Curve.OutputAt(x); the curve's own bounds check
// already implements the endpoint rule.
func (m LinearMonotonic) Project(x ordinate.Ord) projection.Result {
	y, err := m.Curve.OutputAt(x)
	if err != nil {
		return projection.OutOfBounds
	}
	return projection.SuccessOrdinate(y)
}

// ProjectInv evaluates m.Curve.InputAt(y).
func (m LinearMonotonic) ProjectInv(y ordinate.Ord) projection.Result {
	x, err := m.Curve.InputAt(y)
	if err != nil {
		return projection.OutOfBounds
	}
	return projection.SuccessOrdinate(x)
}

// Clone returns a deep copy of m.
func (m LinearMonotonic) Clone() Mapping {
	return LinearMonotonic{Curve: m.Curve.Clone()}
}

// ShrinkToInputInterval restricts m to t via m.Curve.TrimInput, returning
// Empty if the intersection is empty.
func (m LinearMonotonic) ShrinkToInputInterval(t interval.ContinuousInterval) Mapping {
	trimmed, err := m.Curve.TrimInput(t)
	if err != nil {
		return Empty{DefinedRange: interval.ZERO}
	}
	return LinearMonotonic{Curve: trimmed}
}

// ShrinkToOutputInterval restricts m to t via m.Curve.TrimOutput.
func (m LinearMonotonic) ShrinkToOutputInterval(t interval.ContinuousInterval) Mapping {
	trimmed, err := m.Curve.TrimOutput(t)
	if err != nil {
		return Empty{DefinedRange: interval.ZERO}
	}
	return LinearMonotonic{Curve: trimmed}
}

// SplitAtInputOrd splits m via m.Curve.SplitAtInput.
func (m LinearMonotonic) SplitAtInputOrd(x ordinate.Ord) (Mapping, Mapping, error) {
	left, right, err := m.Curve.SplitAtInput(x)
	if err != nil {
		return nil, nil, ErrSplitNotInterior
	}
	return LinearMonotonic{Curve: left}, LinearMonotonic{Curve: right}, nil
}

// SplitAtEachInputOrd splits m via m.Curve.SplitAtEachInput directly, which
// already implements the ascending/in-bounds/dedup contract.
func (m LinearMonotonic) SplitAtEachInputOrd(xs []ordinate.Ord) ([]Mapping, error) {
	pieces, err := m.Curve.SplitAtEachInput(xs)
	if err != nil {
		return nil, err
	}
	out := make([]Mapping, len(pieces))
	for i, p := range pieces {
		out[i] = LinearMonotonic{Curve: p}
	}
	return out, nil
}

// Invert swaps the In/Out role of every knot. A flat run (consecutive knots
// sharing the same Out) is not invertible pointwise; the least original In
// achieving that output is kept, matching linear.Curve.InputAt's documented
// tie-break. Fails with ErrNonInvertible if fewer than 2 distinct outputs
// remain after that collapse.
func (m LinearMonotonic) Invert() (Mapping, error) {
	knots := m.Curve.Knots()
	newKnots := make([]linear.Knot, 0, len(knots))
	for i, kp := range knots {
		if i > 0 && kp.Out == knots[i-1].Out {
			continue
		}
		newKnots = append(newKnots, linear.Knot{In: kp.Out, Out: kp.In})
	}
	if len(newKnots) < 2 {
		return nil, ErrNonInvertible
	}
	if newKnots[0].In > newKnots[len(newKnots)-1].In {
		for i, j := 0, len(newKnots)-1; i < j; i, j = i+1, j-1 {
			newKnots[i], newKnots[j] = newKnots[j], newKnots[i]
		}
	}
	c, err := linear.New(newKnots)
	if err != nil {
		return nil, ErrNonInvertible
	}
	return LinearMonotonic{Curve: c}, nil
}

var _ Mapping = LinearMonotonic{}
