package bezier

import (
	"math"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
)

// hodographCoeffs returns the quadratic coefficients (a, b, c) of the
// derivative curve B'(u) = a·u² + b·u + c on the chosen axis:
//
//	B'(u) = 3·((p1-p0)(1-u)² + 2(p2-p1)(1-u)u + (p3-p2)u²)
//
// Expanding and collecting by power of u gives:
//
//	c = 3(p1-p0)
//	b = 6(p2-p1) - 6(p1-p0)
//	a = 3(p3-p2) - 6(p2-p1) + 3(p1-p0)
func (s Segment) hodographCoeffs(axis Axis) (a, b, c ordinate.Ord) {
	p0 := axis.Value(s.P0)
	p1 := axis.Value(s.P1)
	p2 := axis.Value(s.P2)
	p3 := axis.Value(s.P3)

	d0 := p1 - p0
	d1 := p2 - p1
	d2 := p3 - p2

	c = 3 * d0
	b = 6*d1 - 6*d0
	a = 3*d2 - 6*d1 + 3*d0
	return a, b, c
}

// quadraticRoots solves a·u² + b·u + c = 0 via the quadratic formula,
// branching on the discriminant Δ = b² - 4ac:
//
//	Δ < 0 (within -ε)        → no real root
//	|Δ| <= ε                 → one root
//	Δ > 0                    → two roots
//
// The degenerate a == 0 case is handled before the discriminant test: the
// equation is linear, giving the single root -c/b, or no root when b == 0
// as well.
func quadraticRoots(a, b, c, eps ordinate.Ord) []ordinate.Ord {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []ordinate.Ord{-c / b}
	}
	disc := b*b - 4*a*c
	switch {
	case disc < -eps:
		return nil
	case disc <= eps:
		return []ordinate.Ord{-b / (2 * a)}
	default:
		sq := ordinate.Ord(math.Sqrt(float64(disc)))
		r1 := (-b + sq) / (2 * a)
		r2 := (-b - sq) / (2 * a)
		if r1 > r2 {
			r1, r2 = r2, r1
		}
		return []ordinate.Ord{r1, r2}
	}
}

// CriticalPoints returns the roots of the hodograph on the given axis that
// lie strictly within the open interval (0,1) — the parameters at which the
// curve's derivative on that axis vanishes, sorted ascending.
func (s Segment) CriticalPoints(axis Axis, eps ordinate.Ord) []ordinate.Ord {
	a, b, c := s.hodographCoeffs(axis)
	roots := quadraticRoots(a, b, c, eps)
	out := make([]ordinate.Ord, 0, len(roots))
	for _, u := range roots {
		if u > 0 && u < 1 {
			out = append(out, u)
		}
	}
	return out
}

// IsMonotonicInput reports whether s has no interior extremum on the input
// axis, i.e. is safe to use directly as a 1→1 mapping without further
// splitting.
func (s Segment) IsMonotonicInput(eps ordinate.Ord) bool {
	return len(s.CriticalPoints(AxisIn, eps)) == 0
}

// Extents returns the true input and output bounding intervals of s over
// u ∈ [0,1], using the hodograph roots (not just the endpoints), since an
// interior extremum can place the true min/max strictly between P0 and P3.
func (s Segment) Extents(eps ordinate.Ord) (input, output interval.ContinuousInterval) {
	return s.extentsOn(AxisIn, eps), s.extentsOn(AxisOut, eps)
}

// extentsOn computes the bounding interval of axis over u ∈ [0,1] by
// evaluating s at the endpoints and at every interior hodograph root on
// that axis, then taking the min/max of the resulting values.
func (s Segment) extentsOn(axis Axis, eps ordinate.Ord) interval.ContinuousInterval {
	lo := axis.Value(s.P0)
	hi := axis.Value(s.P3)
	if hi < lo {
		lo, hi = hi, lo
	}
	for _, u := range s.CriticalPoints(axis, eps) {
		v := axis.Value(s.Evaluate(u))
		lo = ordinate.Min(lo, v)
		hi = ordinate.Max(hi, v)
	}
	return interval.ContinuousInterval{Start: lo, End: hi}
}
