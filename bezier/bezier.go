// Package bezier implements the cubic Bézier toolkit: de Casteljau
// evaluation, splitting, inverse evaluation (FindU) via a bracket-preserving
// root finder, hodograph-based critical-point extraction, and adaptive
// linearization into a piecewise-linear approximation.
//
// A Segment is used as a Mapping only after it has been reduced to pieces
// monotonic in the input axis (see CriticalSplit) and then linearized (see
// Linearize); no mapping variant holds a Segment directly.
package bezier

import (
	"errors"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
)

// Sentinel errors for bezier operations.
var (
	// ErrInvalidBounds indicates a Segment was constructed with P0.In >
	// P3.In, violating the required input-monotonic-direction invariant.
	ErrInvalidBounds = errors.New("bezier: P0.In must be <= P3.In")

	// ErrOutOfBounds indicates FindU's target lies outside the segment's
	// extents on the requested axis.
	ErrOutOfBounds = errors.New("bezier: target outside axis extents")

	// ErrConvergenceFailure indicates FindU's root finder failed to
	// bracket a root or exceeded its iteration cap.
	ErrConvergenceFailure = errors.New("bezier: findU failed to converge")

	// ErrNonMonotonic indicates a Segment used directly as a mapping is not
	// monotonic in its input axis (callers must CriticalSplit first).
	ErrNonMonotonic = errors.New("bezier: segment not monotonic in input axis")
)

// ControlPoint is a (In, Out) pair of ordinates.
type ControlPoint struct {
	In  ordinate.Ord
	Out ordinate.Ord
}

// Add returns the pointwise sum, used only for de Casteljau interpolation.
func (p ControlPoint) Add(q ControlPoint) ControlPoint {
	return ControlPoint{In: p.In + q.In, Out: p.Out + q.Out}
}

// Scale returns the pointwise scaling by s, used only for interpolation.
func (p ControlPoint) Scale(s ordinate.Ord) ControlPoint {
	return ControlPoint{In: p.In * s, Out: p.Out * s}
}

// Lerp linearly interpolates between p and q at parameter u.
func Lerp(p, q ControlPoint, u ordinate.Ord) ControlPoint {
	return p.Scale(1 - u).Add(q.Scale(u))
}

// Axis selects which coordinate of a ControlPoint an operation acts on.
type Axis uint8

const (
	// AxisIn selects ControlPoint.In.
	AxisIn Axis = iota
	// AxisOut selects ControlPoint.Out.
	AxisOut
)

// Value returns the component of p selected by a.
func (a Axis) Value(p ControlPoint) ordinate.Ord {
	if a == AxisIn {
		return p.In
	}
	return p.Out
}

// Segment is a cubic Bézier curve (P0, P1, P2, P3). Segment.Check enforces
// the one structural invariant: P0.In <= P3.In.
type Segment struct {
	P0, P1, P2, P3 ControlPoint
}

// New constructs a Segment, failing with ErrInvalidBounds if P0.In > P3.In.
func New(p0, p1, p2, p3 ControlPoint) (Segment, error) {
	s := Segment{P0: p0, P1: p1, P2: p2, P3: p3}
	if err := s.Check(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

// Check validates the Segment's structural invariant.
func (s Segment) Check() error {
	if s.P3.In < s.P0.In {
		return ErrInvalidBounds
	}
	return nil
}

// Evaluate computes B(u) from the expanded Bernstein (bezier0) form:
//
//	B(u) = (1-u)³P0 + 3(1-u)²u·P1 + 3(1-u)u²·P2 + u³·P3
//
// u is not restricted to [0,1]; callers that need extrapolation get it for
// free, callers that need the strict [0,1] domain enforce it themselves.
// Evaluate(0) == P0 and Evaluate(1) == P3 exactly: those two parameters
// return the end control points directly instead of summing the terms.
func (s Segment) Evaluate(u ordinate.Ord) ControlPoint {
	switch u {
	case 0:
		return s.P0
	case 1:
		return s.P3
	}
	v := 1 - u
	c0 := v * v * v
	c1 := 3 * v * v * u
	c2 := 3 * v * u * u
	c3 := u * u * u
	return ControlPoint{
		In:  c0*s.P0.In + c1*s.P1.In + c2*s.P2.In + c3*s.P3.In,
		Out: c0*s.P0.Out + c1*s.P1.Out + c2*s.P2.Out + c3*s.P3.Out,
	}
}

// Split divides s at parameter u ∈ [0,1] via repeated de Casteljau lerps,
// producing two segments whose union is s and which meet C⁰-continuously
// at u.
func (s Segment) Split(u ordinate.Ord) (left, right Segment) {
	if u <= 0 {
		return Segment{P0: s.P0, P1: s.P0, P2: s.P0, P3: s.P0}, s
	}
	if u >= 1 {
		return s, Segment{P0: s.P3, P1: s.P3, P2: s.P3, P3: s.P3}
	}
	q0 := Lerp(s.P0, s.P1, u)
	q1 := Lerp(s.P1, s.P2, u)
	q2 := Lerp(s.P2, s.P3, u)
	r0 := Lerp(q0, q1, u)
	r1 := Lerp(q1, q2, u)
	mid := Lerp(r0, r1, u)
	left = Segment{P0: s.P0, P1: q0, P2: r0, P3: mid}
	right = Segment{P0: mid, P1: r1, P2: q2, P3: s.P3}
	return left, right
}

// Bounds returns the raw endpoint-to-endpoint input interval [P0.In, P3.In].
// This is NOT the true extents when the curve has interior extrema on the
// input axis; see Extents for the hodograph-corrected bounds.
func (s Segment) Bounds() interval.ContinuousInterval {
	return interval.ContinuousInterval{Start: s.P0.In, End: s.P3.In}
}
