package topology

import (
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/mapping"
)

// TrimInInputSpace restricts tp to t ∩ tp.Bounds(). Pieces entirely outside
// t are dropped; the first and last surviving pieces are shrunk to the
// clipped range. Fails with ErrEmptyResult if the intersection is empty or
// degenerates to a single point.
func (tp Topology) TrimInInputSpace(t interval.ContinuousInterval) (Topology, error) {
	clipped, ok := interval.Intersect(tp.Bounds(), t)
	if !ok || clipped.IsInstant() {
		return Topology{}, ErrEmptyResult
	}

	var out []mapping.Mapping
	for _, m := range tp.mappings {
		sub, ok := interval.Intersect(m.InputBounds(), clipped)
		if !ok || sub.IsInstant() {
			continue
		}
		out = append(out, m.ShrinkToInputInterval(sub))
	}
	if len(out) == 0 {
		return Topology{}, ErrEmptyResult
	}
	return Topology{mappings: mergeAdjacentEmpty(out)}, nil
}

// TrimInOutputSpace restricts every piece to the portion of its output that
// lies in t. A piece whose restriction is empty is replaced outright by an
// Empty mapping spanning its original input range; a piece restricted to a
// strict sub-range of its own input bounds gets Empty mappings inserted on
// either side of the restricted portion, preserving the input tiling, so
// the result stays right-met even when t punches a hole through the
// middle of a single piece.
func (tp Topology) TrimInOutputSpace(t interval.ContinuousInterval) Topology {
	var out []mapping.Mapping
	for _, m := range tp.mappings {
		full := m.InputBounds()
		shrunk := m.ShrinkToOutputInterval(t)
		if isEmptyMapping(shrunk) {
			out = append(out, mapping.NewEmpty(full))
			continue
		}
		kept := shrunk.InputBounds()
		if kept.Start > full.Start {
			out = append(out, mapping.NewEmpty(interval.ContinuousInterval{Start: full.Start, End: kept.Start}))
		}
		out = append(out, shrunk)
		if kept.End < full.End {
			out = append(out, mapping.NewEmpty(interval.ContinuousInterval{Start: kept.End, End: full.End}))
		}
	}
	return Topology{mappings: mergeAdjacentEmpty(out)}
}
