// Package linear implements Curve, a non-empty list of (In, Out) knots that
// is strictly increasing in In and monotonic (non-decreasing or
// non-increasing throughout) in Out — the piecewise-linear representation
// every lifted Bézier curve is reduced to before becoming a
// [mapping.LinearMonotonic].
package linear

import (
	"errors"
	"sort"

	"github.com/katalvlaran/topology/bezier"
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
)

// Sentinel errors for linear curve operations.
var (
	// ErrTooFewKnots indicates a Curve was constructed with fewer than 2
	// knots.
	ErrTooFewKnots = errors.New("linear: need at least 2 knots")

	// ErrNonIncreasingInput indicates adjacent knots did not satisfy
	// k[i].In < k[i+1].In.
	ErrNonIncreasingInput = errors.New("linear: knot inputs must be strictly increasing")

	// ErrNonMonotonicOutput indicates the knot outputs are neither globally
	// non-decreasing nor globally non-increasing.
	ErrNonMonotonicOutput = errors.New("linear: knot outputs must be monotonic")

	// ErrOutOfBounds indicates a query ordinate fell outside the curve's
	// input (OutputAt) or output (InputAt) bounds.
	ErrOutOfBounds = errors.New("linear: query out of bounds")

	// ErrSplitNotInterior indicates SplitAtInput was asked to split at a
	// point that is not strictly interior to the curve's input bounds.
	ErrSplitNotInterior = errors.New("linear: split point not strictly interior")
)

// Knot is a control point of a Curve; it shares ControlPoint's shape so
// Bézier-derived knot lists (bezier.Segment.Linearize) drop in directly.
type Knot = bezier.ControlPoint

// Curve is a non-empty, input-strictly-increasing, output-monotonic
// sequence of Knots.
type Curve struct {
	knots []Knot
	// decreasing caches the output direction so OutputAt/InputAt don't
	// re-derive it on every call.
	decreasing bool
}

// New validates knots and constructs a Curve. knots is copied; the caller's
// slice is not aliased.
func New(knots []Knot) (Curve, error) {
	if len(knots) < 2 {
		return Curve{}, ErrTooFewKnots
	}
	for i := 1; i < len(knots); i++ {
		if !(knots[i-1].In < knots[i].In) {
			return Curve{}, ErrNonIncreasingInput
		}
	}
	dec, ok := outputDirection(knots)
	if !ok {
		return Curve{}, ErrNonMonotonicOutput
	}

	owned := make([]Knot, len(knots))
	copy(owned, knots)
	return Curve{knots: owned, decreasing: dec}, nil
}

// outputDirection reports whether outputs are non-increasing (true) or
// non-decreasing (false), and false (as the second value) if neither holds.
func outputDirection(knots []Knot) (decreasing bool, ok bool) {
	nonDecr, nonIncr := true, true
	for i := 1; i < len(knots); i++ {
		if knots[i].Out < knots[i-1].Out {
			nonDecr = false
		}
		if knots[i].Out > knots[i-1].Out {
			nonIncr = false
		}
	}
	switch {
	case nonDecr:
		return false, true
	case nonIncr:
		return true, true
	default:
		return false, false
	}
}

// Knots returns a defensive copy of the curve's knot list.
func (c Curve) Knots() []Knot {
	out := make([]Knot, len(c.knots))
	copy(out, c.knots)
	return out
}

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	out := make([]Knot, len(c.knots))
	copy(out, c.knots)
	return Curve{knots: out, decreasing: c.decreasing}
}

// ExtentsInput returns [k[0].In, k[n-1].In].
func (c Curve) ExtentsInput() interval.ContinuousInterval {
	return interval.ContinuousInterval{Start: c.knots[0].In, End: c.knots[len(c.knots)-1].In}
}

// ExtentsOutput returns the (possibly reversed-then-reordered) bounding
// interval of all knot outputs.
func (c Curve) ExtentsOutput() interval.ContinuousInterval {
	lo, hi := c.knots[0].Out, c.knots[0].Out
	for _, k := range c.knots[1:] {
		lo = ordinate.Min(lo, k.Out)
		hi = ordinate.Max(hi, k.Out)
	}
	return interval.ContinuousInterval{Start: lo, End: hi}
}

// OutputAt evaluates the curve at input x by bracketing x between adjacent
// knots (binary search) and linearly interpolating. x == k[n-1].In is
// accepted and returns k[n-1].Out (the endpoint rule); any other
// x outside [k[0].In, k[n-1].In] fails with ErrOutOfBounds.
func (c Curve) OutputAt(x ordinate.Ord) (ordinate.Ord, error) {
	n := len(c.knots)
	if x < c.knots[0].In || x > c.knots[n-1].In {
		return 0, ErrOutOfBounds
	}
	if x == c.knots[n-1].In {
		return c.knots[n-1].Out, nil
	}
	i := sort.Search(n, func(i int) bool { return c.knots[i].In > x }) - 1
	if i < 0 {
		i = 0
	}
	a, b := c.knots[i], c.knots[i+1]
	t := (x - a.In) / (b.In - a.In)
	return a.Out + t*(b.Out-a.Out), nil
}

// InputAt solves OutputAt(x) == y for x, valid because the curve is
// monotonic in output. When the output is constant across multiple knots,
// the least such In is returned (documented tie-break).
func (c Curve) InputAt(y ordinate.Ord) (ordinate.Ord, error) {
	n := len(c.knots)
	bounds := c.ExtentsOutput()
	if y < bounds.Start || y > bounds.End {
		return 0, ErrOutOfBounds
	}

	// Work on a monotonic-non-decreasing view so a single search strategy
	// covers both curve orientations.
	val := func(i int) ordinate.Ord {
		if c.decreasing {
			return -c.knots[i].Out
		}
		return c.knots[i].Out
	}
	target := y
	if c.decreasing {
		target = -y
	}

	i := sort.Search(n, func(i int) bool { return val(i) >= target })
	if i >= n {
		return c.knots[n-1].In, nil
	}
	if val(i) == target {
		// Tie-break: walk back to the first knot achieving this output.
		for i > 0 && val(i-1) == target {
			i--
		}
		return c.knots[i].In, nil
	}
	// i > 0 here: val(0) >= target would have been caught above if i==0
	// and equal; since not equal, i==0 means target < val(0), which is
	// impossible given the bounds check, so i must be >= 1.
	a, b := i-1, i
	av, bv := val(a), val(b)
	t := (target - av) / (bv - av)
	return c.knots[a].In + t*(c.knots[b].In-c.knots[a].In), nil
}

// SplitAtInput splits c into two curves meeting at x, sharing an
// interpolated knot at x. Fails with ErrSplitNotInterior if x is not
// strictly between the first and last knot inputs.
func (c Curve) SplitAtInput(x ordinate.Ord) (left, right Curve, err error) {
	bounds := c.ExtentsInput()
	if !(bounds.Start < x && x < bounds.End) {
		return Curve{}, Curve{}, ErrSplitNotInterior
	}
	y, err := c.OutputAt(x)
	if err != nil {
		return Curve{}, Curve{}, err
	}
	mid := Knot{In: x, Out: y}

	var leftKnots, rightKnots []Knot
	for _, k := range c.knots {
		switch {
		case k.In < x:
			leftKnots = append(leftKnots, k)
		case k.In > x:
			rightKnots = append(rightKnots, k)
		}
	}
	leftKnots = append(leftKnots, mid)
	rightKnots = append([]Knot{mid}, rightKnots...)

	left, err = New(leftKnots)
	if err != nil {
		return Curve{}, Curve{}, err
	}
	right, err = New(rightKnots)
	if err != nil {
		return Curve{}, Curve{}, err
	}
	return left, right, nil
}

// SplitAtEachInput splits c at every x in xs, stably and in ascending
// order. Points outside (bounds.Start, bounds.End) are ignored; duplicate
// points (within DefaultEpsilon) collapse to one split.
func (c Curve) SplitAtEachInput(xs []ordinate.Ord) ([]Curve, error) {
	bounds := c.ExtentsInput()
	var pts []ordinate.Ord
	for _, x := range xs {
		if x <= bounds.Start || x >= bounds.End {
			continue
		}
		pts = append(pts, x)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })
	deduped := pts[:0]
	for i, x := range pts {
		if i == 0 || !x.Near(pts[i-1], ordinate.DefaultEpsilon) {
			deduped = append(deduped, x)
		}
	}
	pts = deduped

	if len(pts) == 0 {
		return []Curve{c}, nil
	}

	out := make([]Curve, 0, len(pts)+1)
	remaining := c
	for _, x := range pts {
		left, right, err := remaining.SplitAtInput(x)
		if err != nil {
			return nil, err
		}
		out = append(out, left)
		remaining = right
	}
	out = append(out, remaining)
	return out, nil
}

// TrimInput restricts c to t ∩ ExtentsInput(), inserting interpolated
// endpoint knots where t's bounds fall strictly inside an existing segment.
func (c Curve) TrimInput(t interval.ContinuousInterval) (Curve, error) {
	bounds := c.ExtentsInput()
	clipped, ok := interval.Intersect(bounds, t)
	if !ok || clipped.IsInstant() {
		return Curve{}, ErrOutOfBounds
	}
	return c.sliceByInput(clipped.Start, clipped.End)
}

// TrimOutput restricts c to the portion whose output lies in t, by
// projecting t's endpoints to input space via InputAt and delegating to
// TrimInput.
func (c Curve) TrimOutput(t interval.ContinuousInterval) (Curve, error) {
	outBounds := c.ExtentsOutput()
	clipped, ok := interval.Intersect(outBounds, t)
	if !ok || clipped.IsInstant() {
		return Curve{}, ErrOutOfBounds
	}
	x0, err := c.InputAt(clipped.Start)
	if err != nil {
		return Curve{}, err
	}
	x1, err := c.InputAt(clipped.End)
	if err != nil {
		return Curve{}, err
	}
	if c.decreasing {
		x0, x1 = x1, x0
	}
	return c.sliceByInput(x0, x1)
}

// sliceByInput returns the portion of c whose input lies in [x0, x1],
// inserting interpolated knots at x0/x1 when they fall strictly inside a
// segment rather than landing exactly on an existing knot.
func (c Curve) sliceByInput(x0, x1 ordinate.Ord) (Curve, error) {
	bounds := c.ExtentsInput()
	if x0 < bounds.Start {
		x0 = bounds.Start
	}
	if x1 > bounds.End {
		x1 = bounds.End
	}
	if x1 <= x0 {
		return Curve{}, ErrOutOfBounds
	}

	var knots []Knot
	y0, err := c.OutputAt(x0)
	if err != nil {
		return Curve{}, err
	}
	knots = append(knots, Knot{In: x0, Out: y0})

	for _, k := range c.knots {
		if k.In > x0 && k.In < x1 {
			knots = append(knots, k)
		}
	}

	y1, err := c.OutputAt(x1)
	if err != nil {
		return Curve{}, err
	}
	knots = append(knots, Knot{In: x1, Out: y1})

	return New(knots)
}
