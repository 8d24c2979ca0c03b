package topology

import (
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/mapping"
)

// Invert returns the topology's inverse as a list of topologies, one per
// maximal contiguous run of pieces sharing one output direction (output and
// input roles swapped within each run). Empty pieces contribute no output
// value and are dropped first. A run boundary falls at every local output
// extremum — a tighter criterion than coarser output-range disjointness
// would require — since a direction reversal within a single run would mean
// two inputs share one output, which has no single-valued Topology
// representation; splitting into multiple runs instead preserves
// invertibility of each piece of the list. A non-monotonic topology (e.g. a
// V-shape) therefore comes back as more than one Topology rather than
// failing outright; ProjectInv remains available on the original topology
// for single-branch inverse queries that don't need the full list.
func (tp Topology) Invert() ([]Topology, error) {
	var real []mapping.Mapping
	for _, m := range tp.mappings {
		if !isEmptyMapping(m) {
			real = append(real, m)
		}
	}
	if len(real) == 0 {
		return nil, ErrNonInvertible
	}

	runs := groupRuns(real)
	out := make([]Topology, 0, len(runs))
	for _, run := range runs {
		merged, err := mergeRun(run)
		if err != nil {
			return nil, err
		}
		inv, err := merged.Invert()
		if err != nil {
			return nil, err
		}
		out = append(out, Topology{mappings: []mapping.Mapping{inv}})
	}
	return out, nil
}

// direction reports whether m's output decreases from its input Start to
// its input End, and false in ok if m has no well-defined direction (Empty,
// or a degenerate constant-output piece).
func direction(m mapping.Mapping) (decreasing bool, ok bool) {
	if isEmptyMapping(m) {
		return false, false
	}
	b := m.InputBounds()
	y0, err0 := m.Project(b.Start).Ordinate()
	y1, err1 := m.Project(b.End).Ordinate()
	if err0 != nil || err1 != nil {
		return false, false
	}
	if y1 == y0 {
		return false, false
	}
	return y1 < y0, true
}

// groupRuns partitions ms into maximal contiguous runs sharing one output
// direction; a direction-less piece (only possible here if a constant
// LinearMonotonic segment slips through) always starts a new singleton run.
func groupRuns(ms []mapping.Mapping) [][]mapping.Mapping {
	var runs [][]mapping.Mapping
	var current []mapping.Mapping
	var curDec bool
	haveDir := false

	flush := func() {
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
			haveDir = false
		}
	}

	for _, m := range ms {
		dec, ok := direction(m)
		if !ok {
			flush()
			runs = append(runs, []mapping.Mapping{m})
			continue
		}
		if !haveDir {
			current = []mapping.Mapping{m}
			curDec = dec
			haveDir = true
			continue
		}
		if dec == curDec {
			current = append(current, m)
		} else {
			runs = append(runs, current)
			current = []mapping.Mapping{m}
			curDec = dec
		}
	}
	flush()
	return runs
}

// mergeRun folds a same-direction run of mappings into one Mapping: a
// singleton run is returned unchanged; a multi-piece run is converted to a
// single LinearMonotonic by concatenating each piece's knot representation,
// dropping the duplicate knot shared at each internal boundary.
func mergeRun(run []mapping.Mapping) (mapping.Mapping, error) {
	if len(run) == 1 {
		return run[0], nil
	}

	var knots []linear.Knot
	for i, m := range run {
		c, err := toLinearCurve(m)
		if err != nil {
			return nil, err
		}
		pieceKnots := c.Knots()
		if i == 0 {
			knots = append(knots, pieceKnots...)
		} else {
			knots = append(knots, pieceKnots[1:]...)
		}
	}
	merged, err := linear.New(knots)
	if err != nil {
		return nil, err
	}
	return mapping.NewLinearMonotonic(merged), nil
}

// toLinearCurve converts m to its knot-list representation: a
// LinearMonotonic's curve is used directly; an Affine is sampled at its two
// endpoints.
func toLinearCurve(m mapping.Mapping) (linear.Curve, error) {
	switch v := m.(type) {
	case mapping.LinearMonotonic:
		return v.Curve, nil
	case mapping.Affine:
		b := v.Bounds
		return linear.New([]linear.Knot{
			{In: b.Start, Out: v.Xform.Apply(b.Start)},
			{In: b.End, Out: v.Xform.Apply(b.End)},
		})
	default:
		return linear.Curve{}, ErrCannotMerge
	}
}
