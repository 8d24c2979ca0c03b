package mapping

import (
	"github.com/katalvlaran/topology/affine"
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/ordinate"
)

// Join composes a2b and b2c through their shared "B" space:
// a2b's output and b2c's input are intersected, both mappings are shrunk to
// that common range, and the result is built by the variant-pair rule in
// the dispatch matrix below. Empty propagates: if either input is Empty, or
// the intersection is empty, the result is Empty over a2b's input bounds.
func Join(a2b, b2c Mapping) (Mapping, error) {
	if isEmpty(a2b) || isEmpty(b2c) {
		return Empty{DefinedRange: a2b.InputBounds()}, nil
	}

	aOut, _ := a2b.OutputBounds()
	bIn := b2c.InputBounds()
	shared, ok := interval.Intersect(aOut, bIn)
	if !ok {
		return Empty{DefinedRange: a2b.InputBounds()}, nil
	}

	shrunkA := a2b.ShrinkToOutputInterval(shared)
	shrunkB := b2c.ShrinkToInputInterval(shared)
	if isEmpty(shrunkA) || isEmpty(shrunkB) {
		return Empty{DefinedRange: a2b.InputBounds()}, nil
	}

	switch av := shrunkA.(type) {
	case Affine:
		switch bv := shrunkB.(type) {
		case Affine:
			return joinAffineAffine(av, bv), nil
		case LinearMonotonic:
			return joinAffineLinear(av, bv)
		}
	case LinearMonotonic:
		switch bv := shrunkB.(type) {
		case Affine:
			return joinLinearAffine(av, bv)
		case LinearMonotonic:
			return joinLinearLinear(av, bv)
		}
	}
	// Empty×Empty and Empty×other are excluded above; Affine and
	// LinearMonotonic are the only remaining variants, so every pairing is
	// covered by the two switches.
	return Empty{DefinedRange: a2b.InputBounds()}, nil
}

// joinAffineAffine composes two affine transforms directly: affine∘affine
// yields another affine mapping, keeping a2b's (already shrunk) input bounds.
func joinAffineAffine(a, b Affine) Affine {
	return Affine{Bounds: a.Bounds, Xform: affine.Compose(b.Xform, a.Xform)}
}

// joinAffineLinear samples a onto a two-knot linear curve over its own
// bounds, then delegates to the lin∘lin algorithm: affine∘linear yields a
// linear mapping, via the affine side's two-point sampling.
func joinAffineLinear(a Affine, b LinearMonotonic) (Mapping, error) {
	y0 := a.Xform.Apply(a.Bounds.Start)
	y1 := a.Xform.Apply(a.Bounds.End)
	sampled, err := linear.New([]linear.Knot{
		{In: a.Bounds.Start, Out: y0},
		{In: a.Bounds.End, Out: y1},
	})
	if err != nil {
		return nil, err
	}
	return joinLinearLinear(LinearMonotonic{Curve: sampled}, b)
}

// joinLinearAffine maps every knot's Out through the affine transform,
// leaving In untouched: linear∘affine yields another linear mapping.
func joinLinearAffine(a LinearMonotonic, b Affine) (Mapping, error) {
	knots := a.Curve.Knots()
	newKnots := make([]linear.Knot, len(knots))
	for i, kp := range knots {
		newKnots[i] = linear.Knot{In: kp.In, Out: b.Xform.Apply(kp.Out)}
	}
	c, err := linear.New(newKnots)
	if err != nil {
		return nil, err
	}
	return LinearMonotonic{Curve: c}, nil
}

// joinLinearLinear implements the lin∘lin composition:
//  1. Subdivide a at every point whose output coincides with an interior
//     knot input of b (projected backward through a), so every "kink" of
//     either curve becomes a knot of the result.
//  2. Re-evaluate each resulting knot's output by projecting forward
//     through b.
//  3. Collapse consecutive knots whose input differs by less than ε (done
//     implicitly here since the merged point set is already deduplicated).
func joinLinearLinear(a, b LinearMonotonic) (Mapping, error) {
	aBounds := a.Curve.ExtentsInput()
	bBounds := b.Curve.ExtentsInput()

	xs := make([]ordinate.Ord, 0, len(a.Curve.Knots())+len(b.Curve.Knots()))
	for _, kp := range a.Curve.Knots() {
		xs = append(xs, kp.In)
	}
	bKnots := b.Curve.Knots()
	for i := 1; i < len(bKnots)-1; i++ {
		x, err := a.Curve.InputAt(bKnots[i].In)
		if err != nil {
			continue // this kink of b lies outside a's attained output range
		}
		if x > aBounds.Start && x < aBounds.End {
			xs = append(xs, x)
		}
	}
	xs = sortDedupe(append(xs, aBounds.Start, aBounds.End), ordinate.DefaultEpsilon)

	newKnots := make([]linear.Knot, 0, len(xs))
	for _, x := range xs {
		yB, err := a.Curve.OutputAt(x)
		if err != nil {
			continue
		}
		// Floating-point safety net: yB should already land within bBounds
		// since a and b were shrunk to a shared range before Join dispatched
		// here, but clamp to absorb rounding at the exact edges.
		if yB < bBounds.Start {
			yB = bBounds.Start
		}
		if yB > bBounds.End {
			yB = bBounds.End
		}
		yC, err := b.Curve.OutputAt(yB)
		if err != nil {
			continue
		}
		newKnots = append(newKnots, linear.Knot{In: x, Out: yC})
	}

	c, err := linear.New(newKnots)
	if err != nil {
		return nil, err
	}
	return LinearMonotonic{Curve: c}, nil
}
