package bezier

import "github.com/katalvlaran/topology/ordinate"

// CriticalSplit returns 1–3 sub-segments of s, split at every interior
// critical point on the given axis, such that each sub-segment is
// monotonic on that axis (a cubic hodograph has at most 2 interior roots,
// so at most 3 monotonic pieces result).
//
// Lifting a curve into a Mapping always splits on AxisIn, since the input
// axis is the time axis and extrema there must split; the axis parameter
// exists because the same hodograph machinery is also the
// general-purpose critical-point split for the curve's output axis (used,
// e.g., to analyze or re-parameterize a hump-shaped curve without regard to
// its use as a mapping).
func (s Segment) CriticalSplit(axis Axis, eps ordinate.Ord) []Segment {
	crit := s.CriticalPoints(axis, eps)
	if len(crit) == 0 {
		return []Segment{s}
	}

	out := make([]Segment, 0, len(crit)+1)
	remaining := s
	// crit is ascending (from CriticalPoints); splitting sequentially
	// requires re-deriving each split parameter relative to the shrinking
	// remainder, since Split's u is local to [0,1] of the segment being
	// split, not the original s.
	prevU := ordinate.Ord(0)
	for _, u := range crit {
		local := (u - prevU) / (1 - prevU)
		left, right := remaining.Split(local)
		out = append(out, left)
		remaining = right
		prevU = u
	}
	out = append(out, remaining)
	return out
}
