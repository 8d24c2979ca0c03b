package mapping_test

import (
	"testing"

	"github.com/katalvlaran/topology/affine"
	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/mapping"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end float64) interval.ContinuousInterval {
	return interval.ContinuousInterval{Start: ordinate.Ord(start), End: ordinate.Ord(end)}
}

func mustOrd(t *testing.T, r interface {
	Ordinate() (ordinate.Ord, error)
}) ordinate.Ord {
	t.Helper()
	x, err := r.Ordinate()
	require.NoError(t, err)
	return x
}

func TestEmpty_AlwaysOutOfBounds(t *testing.T) {
	e := mapping.NewEmpty(iv(0, 10))
	assert.True(t, e.Project(5).IsOutOfBounds())
	assert.True(t, e.ProjectInv(5).IsOutOfBounds())
	_, ok := e.OutputBounds()
	assert.False(t, ok)
}

func TestEmpty_SplitNotInterior(t *testing.T) {
	e := mapping.NewEmpty(iv(0, 10))
	_, _, err := e.SplitAtInputOrd(0)
	assert.ErrorIs(t, err, mapping.ErrSplitNotInterior)
}

func TestAffine_ProjectEndpointRule(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.New(0, 2))
	require.NoError(t, err)

	got := m.Project(10)
	require.True(t, got.IsSuccess())
	assert.Equal(t, ordinate.Ord(20), mustOrd(t, got))

	assert.True(t, m.Project(10.0001).IsOutOfBounds())
}

func TestAffine_ProjectInvRoundTrip(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.New(3, 2))
	require.NoError(t, err)

	for _, x := range []ordinate.Ord{0, 2.5, 7, 10} {
		y := mustOrd(t, m.Project(x))
		gotX := mustOrd(t, m.ProjectInv(y))
		assert.True(t, gotX.NearDefault(x))
	}
}

func TestAffine_NonInvertibleConstruction(t *testing.T) {
	_, err := mapping.NewAffine(iv(0, 10), affine.New(0, 0))
	assert.ErrorIs(t, err, mapping.ErrNonInvertible)
}

func TestAffine_ShrinkToInputInterval_Disjoint(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.Identity)
	require.NoError(t, err)

	shrunk := m.ShrinkToInputInterval(iv(20, 30))
	_, ok := shrunk.OutputBounds()
	assert.False(t, ok, "disjoint shrink must yield Empty")
}

func TestAffine_ShrinkToOutputInterval(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.New(0, 2)) // y = 2x, output [0,20)
	require.NoError(t, err)

	shrunk := m.ShrinkToOutputInterval(iv(4, 8))
	assert.Equal(t, ordinate.Ord(2), shrunk.InputBounds().Start)
	assert.Equal(t, ordinate.Ord(4), shrunk.InputBounds().End)
}

func TestAffine_Invert(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.New(3, 2)) // y = 2x+3, output [3,23)
	require.NoError(t, err)

	inv, err := m.Invert()
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(3), inv.InputBounds().Start)
	assert.Equal(t, ordinate.Ord(23), inv.InputBounds().End)

	y := mustOrd(t, m.Project(5))
	gotX := mustOrd(t, inv.Project(y))
	assert.True(t, gotX.NearDefault(5))
}

func TestAffine_SplitAtInputOrd(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.Identity)
	require.NoError(t, err)

	left, right, err := m.SplitAtInputOrd(4)
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(4), left.InputBounds().End)
	assert.Equal(t, ordinate.Ord(4), right.InputBounds().Start)
}

func kp(in, out float64) linear.Knot {
	return linear.Knot{In: ordinate.Ord(in), Out: ordinate.Ord(out)}
}

func TestLinearMonotonic_ProjectRoundTrip(t *testing.T) {
	c, err := linear.New([]linear.Knot{kp(0, 0), kp(5, 40), kp(10, 80)})
	require.NoError(t, err)
	m := mapping.NewLinearMonotonic(c)

	for _, x := range []ordinate.Ord{0, 2, 5, 10} {
		y := mustOrd(t, m.Project(x))
		gotX := mustOrd(t, m.ProjectInv(y))
		assert.True(t, gotX.NearDefault(x))
	}
}

func TestLinearMonotonic_Invert(t *testing.T) {
	c, err := linear.New([]linear.Knot{kp(0, 0), kp(5, 40), kp(10, 80)})
	require.NoError(t, err)
	m := mapping.NewLinearMonotonic(c)

	inv, err := m.Invert()
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(0), inv.InputBounds().Start)
	assert.Equal(t, ordinate.Ord(80), inv.InputBounds().End)

	gotY := mustOrd(t, inv.Project(40))
	assert.True(t, gotY.NearDefault(5))
}

func TestLinearMonotonic_Invert_FlatRunCollapses(t *testing.T) {
	c, err := linear.New([]linear.Knot{kp(0, 5), kp(5, 5), kp(10, 10)})
	require.NoError(t, err)
	m := mapping.NewLinearMonotonic(c)

	inv, err := m.Invert()
	require.NoError(t, err)
	x := mustOrd(t, inv.Project(5))
	assert.Equal(t, ordinate.Ord(0), x, "flat run collapses to its least original In")
}

func TestLinearMonotonic_Invert_Degenerate(t *testing.T) {
	c, err := linear.New([]linear.Knot{kp(0, 5), kp(10, 5)})
	require.NoError(t, err)
	m := mapping.NewLinearMonotonic(c)

	_, err = m.Invert()
	assert.ErrorIs(t, err, mapping.ErrNonInvertible)
}

func TestJoin_AffineAffine(t *testing.T) {
	a2b, err := mapping.NewAffine(iv(0, 10), affine.New(0, 2)) // b = 2a
	require.NoError(t, err)
	b2c, err := mapping.NewAffine(iv(0, 20), affine.New(1, 1)) // c = b+1
	require.NoError(t, err)

	joined, err := mapping.Join(a2b, b2c)
	require.NoError(t, err)
	require.IsType(t, mapping.Affine{}, joined)

	got := mustOrd(t, joined.Project(4))
	assert.Equal(t, ordinate.Ord(9), got) // c = 2*4+1 = 9
}

func TestJoin_DisjointYieldsEmpty(t *testing.T) {
	a2b, err := mapping.NewAffine(iv(0, 10), affine.New(0, 1))
	require.NoError(t, err)
	b2c, err := mapping.NewAffine(iv(100, 200), affine.Identity)
	require.NoError(t, err)

	joined, err := mapping.Join(a2b, b2c)
	require.NoError(t, err)
	_, ok := joined.OutputBounds()
	assert.False(t, ok)
}

func TestJoin_LinearLinear(t *testing.T) {
	aCurve, err := linear.New([]linear.Knot{kp(0, 0), kp(10, 10)})
	require.NoError(t, err)
	bCurve, err := linear.New([]linear.Knot{kp(0, 0), kp(5, 100), kp(10, 200)})
	require.NoError(t, err)

	joined, err := mapping.Join(mapping.NewLinearMonotonic(aCurve), mapping.NewLinearMonotonic(bCurve))
	require.NoError(t, err)

	got := mustOrd(t, joined.Project(5))
	assert.Equal(t, ordinate.Ord(100), got)
}

func TestJoin_AffineLinear(t *testing.T) {
	a2b, err := mapping.NewAffine(iv(0, 10), affine.New(0, 1)) // identity-ish, b=a
	require.NoError(t, err)
	bCurve, err := linear.New([]linear.Knot{kp(0, 0), kp(10, 100)})
	require.NoError(t, err)

	joined, err := mapping.Join(a2b, mapping.NewLinearMonotonic(bCurve))
	require.NoError(t, err)

	got := mustOrd(t, joined.Project(4))
	assert.True(t, got.NearDefault(40))
}

func TestJoin_LinearAffine(t *testing.T) {
	aCurve, err := linear.New([]linear.Knot{kp(0, 0), kp(10, 100)})
	require.NoError(t, err)
	b2c, err := mapping.NewAffine(iv(0, 100), affine.New(1, 1)) // c = b+1
	require.NoError(t, err)

	joined, err := mapping.Join(mapping.NewLinearMonotonic(aCurve), b2c)
	require.NoError(t, err)

	got := mustOrd(t, joined.Project(4))
	assert.True(t, got.NearDefault(41))
}

func TestJoin_EmptyPropagates(t *testing.T) {
	empty := mapping.NewEmpty(iv(0, 10))
	b2c, err := mapping.NewAffine(iv(0, 10), affine.Identity)
	require.NoError(t, err)

	joined, err := mapping.Join(empty, b2c)
	require.NoError(t, err)
	_, ok := joined.OutputBounds()
	assert.False(t, ok)
}

func TestShrinkToInputIntervalStrict_Overlapping(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.New(0, 2))
	require.NoError(t, err)

	shrunk, err := mapping.ShrinkToInputIntervalStrict(m, iv(5, 8))
	require.NoError(t, err)
	assert.Equal(t, iv(5, 8), shrunk.InputBounds())
}

func TestShrinkToInputIntervalStrict_Disjoint(t *testing.T) {
	m, err := mapping.NewAffine(iv(0, 10), affine.New(0, 2))
	require.NoError(t, err)

	_, err = mapping.ShrinkToInputIntervalStrict(m, iv(20, 30))
	assert.ErrorIs(t, err, mapping.ErrNoOverlap)
}
