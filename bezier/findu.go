package bezier

import "github.com/katalvlaran/topology/ordinate"

// DefaultFindUMaxIterations bounds the Illinois root finder's iteration
// count.
const DefaultFindUMaxIterations = 50

// FindU solves Evaluate(u).axis == target for u ∈ [0,1] using the Illinois
// variant of regula falsi: a bracket-preserving method chosen over Newton's
// method for numeric stability in near-flat regions, where Newton's tangent
// can send the iterate far outside the bracket.
//
// Fails with ErrOutOfBounds if target lies outside the axis's extents over
// the segment (computed via Extents, so an interior hodograph extremum is
// accounted for, not just the endpoints), and with ErrConvergenceFailure if
// the iteration cap is exceeded without reaching DefaultEpsilon tolerance.
func (s Segment) FindU(target ordinate.Ord, axis Axis) (ordinate.Ord, error) {
	return s.findU(target, axis, ordinate.DefaultEpsilon, DefaultFindUMaxIterations)
}

// findU is FindU with explicit tolerance/iteration-cap parameters, used
// internally so callers needing a tighter or looser bracket don't pay for
// recomputing the defaults.
func (s Segment) findU(target ordinate.Ord, axis Axis, eps ordinate.Ord, maxIter int) (ordinate.Ord, error) {
	input, output := s.Extents(eps)
	extents := input
	if axis == AxisOut {
		extents = output
	}
	if target < extents.Start-eps || target > extents.End+eps {
		return 0, ErrOutOfBounds
	}

	f := func(u ordinate.Ord) ordinate.Ord {
		return axis.Value(s.Evaluate(u)) - target
	}

	lo, hi := ordinate.Ord(0), ordinate.Ord(1)
	flo, fhi := f(lo), f(hi)

	// The curve need not be monotonic on this axis in general, but FindU is
	// only ever called (by mapping/linear/topology) on segments already
	// known to be monotonic on the relevant axis, so flo and fhi bracket
	// the root with opposite signs. If they don't — e.g. target sits
	// exactly on a flat endpoint — short-circuit rather than iterate.
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if sameSign(flo, fhi) {
		return 0, ErrConvergenceFailure
	}

	side := 0 // tracks which endpoint was last replaced, for the Illinois weight halving
	for i := 0; i < maxIter; i++ {
		u := lo + (hi-lo)*flo/(flo-fhi)
		fu := f(u)
		if absOrd(fu) <= eps {
			return u, nil
		}
		if sameSign(fu, flo) {
			lo, flo = u, fu
			if side == 1 {
				fhi /= 2 // Illinois modification: damp the stale endpoint
			}
			side = 1
		} else {
			hi, fhi = u, fu
			if side == -1 {
				flo /= 2
			}
			side = -1
		}
	}
	return 0, ErrConvergenceFailure
}

func sameSign(a, b ordinate.Ord) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func absOrd(a ordinate.Ord) ordinate.Ord {
	if a < 0 {
		return -a
	}
	return a
}
