package topology

import (
	"github.com/katalvlaran/topology/affine"
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/mapping"
	"github.com/katalvlaran/topology/ordinate"
)

// Join composes ab (A→B) and bc (B→C) into a single A→C Topology:
//
//  0. If ab's output coverage collapses to a single point (every piece
//     maps its whole input range onto one B-ordinate), project that point
//     through bc directly: out of bounds yields Empty over ab's input
//     bounds, otherwise the result is a single constant mapping over ab's
//     input bounds at the projected value. This instant case has no
//     meaningful "shared range" to intersect or trim against.
//  1. Compute the shared B-range: the intersection of ab's output coverage
//     (the extent of every non-Empty piece's output bounds) and bc's
//     overall input bounds.
//  2. Trim ab to that shared range in output space, turning any portion of
//     ab's input domain whose output falls outside it into Empty.
//  3. Trim bc to the shared range in input space.
//  4. Align the two sides: split the trimmed ab at every point whose output
//     (projected back through ab) coincides with one of bc's internal
//     piece boundaries, so every "kink" of bc becomes a breakpoint of ab.
//  5. Pairwise-compose: for each aligned ab piece, locate the bc piece
//     covering its output range and call mapping.Join on the pair (Empty ab
//     pieces, or ab pieces whose output lands in no bc piece, become Empty
//     directly).
//  6. Assemble the composed pieces into the result Topology, merging
//     adjacent Empty runs.
func Join(ab, bc Topology) (Topology, error) {
	abOutput, has := ab.outputExtent()
	if !has {
		return Topology{mappings: []mapping.Mapping{mapping.NewEmpty(ab.Bounds())}}, nil
	}
	if abOutput.IsInstant() {
		y, err := bc.Project(abOutput.Start).Ordinate()
		if err != nil {
			return Topology{mappings: []mapping.Mapping{mapping.NewEmpty(ab.Bounds())}}, nil
		}
		constPiece, err := constantMapping(ab.Bounds(), y)
		if err != nil {
			return Topology{}, err
		}
		return Topology{mappings: []mapping.Mapping{constPiece}}, nil
	}
	shared, ok := interval.Intersect(abOutput, bc.Bounds())
	if !ok {
		return Topology{mappings: []mapping.Mapping{mapping.NewEmpty(ab.Bounds())}}, nil
	}

	trimmedAB := ab.TrimInOutputSpace(shared)
	trimmedBC, err := bc.TrimInInputSpace(shared)
	if err != nil {
		return Topology{mappings: []mapping.Mapping{mapping.NewEmpty(ab.Bounds())}}, nil
	}

	// Every ab piece whose output happens to cover a given bc breakpoint
	// must be split there, not just the first one ProjectInv would find —
	// trimmedAB need not be globally output-monotonic (e.g. a V-shaped
	// piece sequence), so ProjectInvAll is required here, not the
	// single-branch ProjectInv.
	var splitXs []ordinate.Ord
	for _, y := range trimmedBC.EndPointsInput() {
		splitXs = append(splitXs, trimmedAB.ProjectInvAll(y)...)
	}
	alignedAB, err := trimmedAB.SplitAtInputOrds(splitXs)
	if err != nil {
		return Topology{}, err
	}

	composed := make([]mapping.Mapping, 0, len(alignedAB.mappings))
	for _, piece := range alignedAB.mappings {
		if isEmptyMapping(piece) {
			composed = append(composed, mapping.NewEmpty(piece.InputBounds()))
			continue
		}
		ob, ok := piece.OutputBounds()
		if !ok {
			composed = append(composed, mapping.NewEmpty(piece.InputBounds()))
			continue
		}
		idx, ok := trimmedBC.indexAtInput(ob.Start)
		if !ok {
			composed = append(composed, mapping.NewEmpty(piece.InputBounds()))
			continue
		}
		joined, err := mapping.Join(piece, trimmedBC.mappings[idx])
		if err != nil {
			return Topology{}, err
		}
		composed = append(composed, joined)
	}

	return FromMappings(mergeAdjacentEmpty(composed))
}

// constantMapping builds a mapping over bounds whose output is y everywhere.
// An instant bounds has only one input ordinate, so a single-point Affine
// (Scale == 1, shifted to land on y) represents it exactly; a non-instant
// bounds needs a flat two-knot LinearMonotonic curve, since Affine cannot
// itself be constant (NewAffine rejects Scale == 0).
func constantMapping(bounds interval.ContinuousInterval, y ordinate.Ord) (mapping.Mapping, error) {
	if bounds.IsInstant() {
		a, err := mapping.NewAffine(bounds, affine.Transform1D{Offset: y - bounds.Start, Scale: 1})
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	c, err := linear.New([]linear.Knot{
		{In: bounds.Start, Out: y},
		{In: bounds.End, Out: y},
	})
	if err != nil {
		return nil, err
	}
	return mapping.NewLinearMonotonic(c), nil
}
