package bezier

import (
	"math"

	"github.com/katalvlaran/topology/ordinate"
)

// DefaultFlatnessTolerance is the default maximum perpendicular distance of
// a segment's interior control points from its chord before the segment is
// considered "flat enough" to stop subdividing.
const DefaultFlatnessTolerance = ordinate.DefaultEpsilon

// DefaultMaxRecursionDepth bounds adaptive linearization's recursion at 32
// levels, guaranteeing termination independent of the flatness test.
const DefaultMaxRecursionDepth = 32

// linearizeOptions holds the resolved configuration for Linearize.
type linearizeOptions struct {
	flatness ordinate.Ord
	maxDepth int
	epsilon  ordinate.Ord // used for the CriticalSplit pre-pass
}

// LinearizeOption configures Linearize.
type LinearizeOption func(*linearizeOptions)

// WithFlatnessTolerance overrides DefaultFlatnessTolerance. Panics if tol is
// not positive — a programmer error, not a data error.
func WithFlatnessTolerance(tol ordinate.Ord) LinearizeOption {
	if tol <= 0 {
		panic("bezier: WithFlatnessTolerance requires tol > 0")
	}
	return func(o *linearizeOptions) { o.flatness = tol }
}

// WithMaxDepth overrides DefaultMaxRecursionDepth. Panics if depth is not
// positive.
func WithMaxDepth(depth int) LinearizeOption {
	if depth <= 0 {
		panic("bezier: WithMaxDepth requires depth > 0")
	}
	return func(o *linearizeOptions) { o.maxDepth = depth }
}

// WithEpsilon overrides the tolerance used by the CriticalSplit pre-pass
// that guarantees Linearize's output is monotonic in input.
func WithEpsilon(eps ordinate.Ord) LinearizeOption {
	if eps <= 0 {
		panic("bezier: WithEpsilon requires eps > 0")
	}
	return func(o *linearizeOptions) { o.epsilon = eps }
}

func resolveLinearizeOptions(opts []LinearizeOption) linearizeOptions {
	o := linearizeOptions{
		flatness: DefaultFlatnessTolerance,
		maxDepth: DefaultMaxRecursionDepth,
		epsilon:  ordinate.DefaultEpsilon,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Linearize approximates s by a list of ControlPoints suitable for wrapping
// as a [linear.Curve]. s is first split at its interior critical points on
// the input axis (CriticalSplit), guaranteeing the result is monotonic in
// input even if s itself is not; each monotonic piece is then
// adaptively subdivided until flat within tolerance or the recursion cap is
// reached.
func (s Segment) Linearize(opts ...LinearizeOption) []ControlPoint {
	cfg := resolveLinearizeOptions(opts)
	pieces := s.CriticalSplit(AxisIn, cfg.epsilon)

	var knots []ControlPoint
	for i, piece := range pieces {
		pts := linearizeMonotonic(piece, cfg.flatness, cfg.maxDepth)
		if i == 0 {
			knots = append(knots, pts...)
		} else {
			// pts[0] duplicates the previous piece's last knot (the shared
			// split point); drop it to avoid a zero-length segment in the
			// resulting curve.
			knots = append(knots, pts[1:]...)
		}
	}
	return knots
}

// linearizeMonotonic recursively subdivides a single (already
// input-monotonic) segment, appending sampled points including both
// endpoints.
func linearizeMonotonic(seg Segment, tol ordinate.Ord, maxDepth int) []ControlPoint {
	pts := []ControlPoint{seg.P0}
	var rec func(s Segment, depth int)
	rec = func(s Segment, depth int) {
		if depth >= maxDepth || isFlat(s, tol) {
			pts = append(pts, s.P3)
			return
		}
		left, right := s.Split(0.5)
		rec(left, depth+1)
		rec(right, depth+1)
	}
	rec(seg, 0)
	return pts
}

// isFlat reports whether P1 and P2 both lie within tol of the chord P0-P3,
// measured as perpendicular distance in the (In, Out) plane.
func isFlat(s Segment, tol ordinate.Ord) bool {
	return chordDistance(s.P0, s.P3, s.P1) <= tol && chordDistance(s.P0, s.P3, s.P2) <= tol
}

// chordDistance returns the perpendicular distance of q from the line
// through a and b. If a == b (degenerate chord), it falls back to the
// Euclidean distance from a.
func chordDistance(a, b, q ControlPoint) ordinate.Ord {
	dx := b.In - a.In
	dy := b.Out - a.Out
	length := ordinate.Ord(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return ordinate.Ord(math.Hypot(float64(q.In-a.In), float64(q.Out-a.Out)))
	}
	cross := dx*(q.Out-a.Out) - dy*(q.In-a.In)
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}
