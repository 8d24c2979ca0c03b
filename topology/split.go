package topology

import (
	"github.com/katalvlaran/topology/mapping"
	"github.com/katalvlaran/topology/ordinate"
)

// SplitAtInputOrds subdivides every piece at the interior points of xs that
// fall within it, without changing the function the topology represents —
// only its internal granularity.
func (tp Topology) SplitAtInputOrds(xs []ordinate.Ord) (Topology, error) {
	out := make([]mapping.Mapping, 0, len(tp.mappings))
	for _, m := range tp.mappings {
		mb := m.InputBounds()
		var local []ordinate.Ord
		for _, x := range xs {
			if x > mb.Start && x < mb.End {
				local = append(local, x)
			}
		}
		if len(local) == 0 {
			out = append(out, m)
			continue
		}
		pieces, err := m.SplitAtEachInputOrd(local)
		if err != nil {
			return Topology{}, err
		}
		out = append(out, pieces...)
	}
	return Topology{mappings: out}, nil
}

// SplitAtOutputOrds subdivides every piece at the input points corresponding
// to the interior output values of ys, projected back through each piece's
// own ProjectInv. A y that does not land strictly inside a given piece's
// output range, or has no inverse, contributes no split for that piece.
func (tp Topology) SplitAtOutputOrds(ys []ordinate.Ord) (Topology, error) {
	out := make([]mapping.Mapping, 0, len(tp.mappings))
	for _, m := range tp.mappings {
		ob, ok := m.OutputBounds()
		var local []ordinate.Ord
		if ok {
			mb := m.InputBounds()
			for _, y := range ys {
				if !(y > ob.Start && y < ob.End) {
					continue
				}
				x, err := m.ProjectInv(y).Ordinate()
				if err != nil {
					continue
				}
				if x > mb.Start && x < mb.End {
					local = append(local, x)
				}
			}
		}
		if len(local) == 0 {
			out = append(out, m)
			continue
		}
		pieces, err := m.SplitAtEachInputOrd(local)
		if err != nil {
			return Topology{}, err
		}
		out = append(out, pieces...)
	}
	return Topology{mappings: out}, nil
}
