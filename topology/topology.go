// Package topology implements Topology, an ordered, right-met sequence of
// [mapping.Mapping] pieces covering a contiguous input range, each piece
// meeting the next exactly at its own end.
// It provides the same project/project_inv/trim/split/invert contract as a
// single Mapping, plus Join for composing two topologies end to end.
package topology

import (
	"errors"
	"sort"

	"github.com/katalvlaran/topology/affine"
	"github.com/katalvlaran/topology/bezier"
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/mapping"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/katalvlaran/topology/projection"
)

// Sentinel errors for topology operations.
var (
	// ErrEmptySequence indicates a Topology was constructed with zero
	// mappings.
	ErrEmptySequence = errors.New("topology: need at least one mapping")

	// ErrNotRightMet indicates two adjacent mappings in a constructed
	// sequence do not satisfy mappings[i].InputBounds().End ==
	// mappings[i+1].InputBounds().Start.
	ErrNotRightMet = errors.New("topology: mappings are not right-met")

	// ErrEmptyResult indicates a trim operation left no input range at all.
	ErrEmptyResult = errors.New("topology: operation produced an empty result")

	// ErrCannotMerge indicates Invert encountered a mapping variant it does
	// not know how to fold into a combined linear curve.
	ErrCannotMerge = errors.New("topology: cannot merge mapping into a run")

	// ErrNonInvertible indicates Invert was called on a topology made
	// entirely of Empty pieces, which carries no output value to invert.
	ErrNonInvertible = errors.New("topology: not invertible (no output to invert)")
)

// Topology is a non-empty, ordered, right-met sequence of mappings.
type Topology struct {
	mappings []mapping.Mapping
}

// FromMappings validates and wraps ms as a Topology: ms must be non-empty
// and each adjacent pair must be right-met.
func FromMappings(ms []mapping.Mapping) (Topology, error) {
	if len(ms) == 0 {
		return Topology{}, ErrEmptySequence
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].InputBounds().End != ms[i].InputBounds().Start {
			return Topology{}, ErrNotRightMet
		}
	}
	owned := make([]mapping.Mapping, len(ms))
	copy(owned, ms)
	return Topology{mappings: owned}, nil
}

// FromLinear wraps a single linear.Curve as a one-piece Topology.
func FromLinear(c linear.Curve) Topology {
	return Topology{mappings: []mapping.Mapping{mapping.NewLinearMonotonic(c)}}
}

// FromAffine wraps a single affine.Transform1D over bounds as a one-piece
// Topology. Fails with mapping.ErrNonInvertible if xform.Scale == 0.
func FromAffine(bounds interval.ContinuousInterval, xform affine.Transform1D) (Topology, error) {
	m, err := mapping.NewAffine(bounds, xform)
	if err != nil {
		return Topology{}, err
	}
	return Topology{mappings: []mapping.Mapping{m}}, nil
}

// FromBezier reduces seg to a sequence of monotonic-in-input pieces
// (Segment.CriticalSplit) and linearizes each into a LinearMonotonic
// mapping, producing a right-met Topology covering seg's full input range.
func FromBezier(seg bezier.Segment, eps ordinate.Ord) (Topology, error) {
	pieces := seg.CriticalSplit(bezier.AxisIn, eps)
	ms := make([]mapping.Mapping, 0, len(pieces))
	for _, piece := range pieces {
		knots := piece.Linearize()
		c, err := linear.New(knots)
		if err != nil {
			return Topology{}, err
		}
		ms = append(ms, mapping.NewLinearMonotonic(c))
	}
	return FromMappings(ms)
}

// IdentityOver returns a one-piece Topology that is the identity affine
// mapping over bounds.
func IdentityOver(bounds interval.ContinuousInterval) Topology {
	return Topology{mappings: []mapping.Mapping{mapping.IdentityOver(bounds)}}
}

// IdentityInfinite returns a one-piece Topology that is the identity affine
// mapping over the unbounded interval.
func IdentityInfinite() Topology {
	return Topology{mappings: []mapping.Mapping{mapping.IdentityInfinite()}}
}

// Mappings returns a defensive copy of the underlying mapping sequence.
func (tp Topology) Mappings() []mapping.Mapping {
	out := make([]mapping.Mapping, len(tp.mappings))
	copy(out, tp.mappings)
	return out
}

// Bounds returns the overall right-open input range [first.Start,
// last.End).
func (tp Topology) Bounds() interval.ContinuousInterval {
	return interval.ContinuousInterval{
		Start: tp.mappings[0].InputBounds().Start,
		End:   tp.mappings[len(tp.mappings)-1].InputBounds().End,
	}
}

// OutputBounds returns the smallest interval containing every non-Empty
// piece's output bounds, and false if every piece is Empty.
func (tp Topology) OutputBounds() (interval.ContinuousInterval, bool) {
	return tp.outputExtent()
}

// EndPointsInput returns the ascending list of every mapping boundary in
// input space: the overall Start, then each piece's End.
func (tp Topology) EndPointsInput() []ordinate.Ord {
	out := make([]ordinate.Ord, 0, len(tp.mappings)+1)
	out = append(out, tp.mappings[0].InputBounds().Start)
	for _, m := range tp.mappings {
		out = append(out, m.InputBounds().End)
	}
	return out
}

// EndPointsOutput returns the projected output value at every input
// end point (see EndPointsInput), in the same order. A boundary whose
// projection is out of bounds (can only happen for an Empty piece) is
// omitted.
func (tp Topology) EndPointsOutput() []ordinate.Ord {
	xs := tp.EndPointsInput()
	out := make([]ordinate.Ord, 0, len(xs))
	for _, x := range xs {
		if y, err := tp.Project(x).Ordinate(); err == nil {
			out = append(out, y)
		}
	}
	return out
}

// indexAtInput returns the index of the mapping whose right-open
// [Start, End) contains x, treating the topology's own overall End as
// belonging to the final piece (the endpoint rule). ok is false
// if x falls outside Bounds() entirely.
func (tp Topology) indexAtInput(x ordinate.Ord) (idx int, ok bool) {
	b := tp.Bounds()
	if !(b.Overlaps(x) || x == b.End) {
		return 0, false
	}
	n := len(tp.mappings)
	i := sort.Search(n, func(i int) bool { return tp.mappings[i].InputBounds().Start > x }) - 1
	if i < 0 {
		i = 0
	}
	return i, true
}

// outputExtent returns the smallest interval containing every non-Empty
// piece's output bounds.
func (tp Topology) outputExtent() (interval.ContinuousInterval, bool) {
	var out interval.ContinuousInterval
	has := false
	for _, m := range tp.mappings {
		ob, ok := m.OutputBounds()
		if !ok {
			continue
		}
		if !has {
			out = ob
			has = true
		} else {
			out = interval.Extend(out, ob)
		}
	}
	return out, has
}

// Project evaluates the topology at x by locating the owning piece and
// delegating to its Project.
func (tp Topology) Project(x ordinate.Ord) projection.Result {
	i, ok := tp.indexAtInput(x)
	if !ok {
		return projection.OutOfBounds
	}
	return tp.mappings[i].Project(x)
}

// ProjectInv evaluates the topology's inverse at y by trying each piece in
// order and returning the first success. A Topology is not required to be
// globally monotonic (only each piece is), so this is a convenience
// single-branch query; see ProjectInvAll for every preimage.
func (tp Topology) ProjectInv(y ordinate.Ord) projection.Result {
	for _, m := range tp.mappings {
		if r := m.ProjectInv(y); r.IsSuccess() {
			return r
		}
	}
	return projection.OutOfBounds
}

// ProjectInvAll evaluates the topology's inverse at y against every piece
// and returns every preimage found, ascending and de-duplicated within
// ordinate.DefaultEpsilon — useful when the topology is not output-monotonic
// as a whole, so a single y can have several preimages. A topology with a
// V-shaped output can have up to one preimage per piece; nil is returned
// when y is out of every piece's output bounds.
func (tp Topology) ProjectInvAll(y ordinate.Ord) []ordinate.Ord {
	var xs []ordinate.Ord
	for _, m := range tp.mappings {
		if x, err := m.ProjectInv(y).Ordinate(); err == nil {
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	out := xs[:1]
	for _, x := range xs[1:] {
		if !x.Near(out[len(out)-1], ordinate.DefaultEpsilon) {
			out = append(out, x)
		}
	}
	return out
}

// isEmptyMapping reports whether m is the mapping.Empty variant.
func isEmptyMapping(m mapping.Mapping) bool {
	_, ok := m.(mapping.Empty)
	return ok
}

// mergeAdjacentEmpty folds every run of consecutive mapping.Empty pieces
// into one, keeping the assembled sequence tidy after trim/Join operations
// that can introduce several Empty pieces in a row.
func mergeAdjacentEmpty(ms []mapping.Mapping) []mapping.Mapping {
	if len(ms) == 0 {
		return ms
	}
	out := make([]mapping.Mapping, 0, len(ms))
	for _, m := range ms {
		if isEmptyMapping(m) && len(out) > 0 && isEmptyMapping(out[len(out)-1]) {
			prev := out[len(out)-1].(mapping.Empty)
			out[len(out)-1] = mapping.NewEmpty(interval.ContinuousInterval{
				Start: prev.DefinedRange.Start,
				End:   m.InputBounds().End,
			})
			continue
		}
		out = append(out, m)
	}
	return out
}
