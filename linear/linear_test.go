package linear_test

import (
	"testing"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/linear"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func k(in, out float64) linear.Knot {
	return linear.Knot{In: ordinate.Ord(in), Out: ordinate.Ord(out)}
}

// S3 — the V-shape knots {(0,0),(5,40),(10,0)} are rejected by New as a
// single curve, since their output is not monotonic.
func TestNew_S3_VShapeRejected(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(5, 40), k(10, 0)})
	require.Error(t, err, "a V-shape is not monotonic in output as a single curve")
	_ = c
}

func TestOutputAt_Interpolation(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(5, 40)})
	require.NoError(t, err)

	got, err := c.OutputAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 16.0, float64(got), 1e-9)

	got, err = c.OutputAt(5)
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(40), got)
}

func TestOutputAt_EndpointRule(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 10)})
	require.NoError(t, err)

	got, err := c.OutputAt(10)
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(10), got)

	_, err = c.OutputAt(11)
	assert.ErrorIs(t, err, linear.ErrOutOfBounds)
}

func TestInputAt_RoundTrip(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(5, 40), k(10, 80)})
	require.NoError(t, err)

	for _, x := range []ordinate.Ord{0, 1, 2.5, 5, 8, 10} {
		y, err := c.OutputAt(x)
		require.NoError(t, err)
		gotX, err := c.InputAt(y)
		require.NoError(t, err)
		assert.True(t, gotX.NearDefault(x), "x=%v gotX=%v", x, gotX)
	}
}

func TestInputAt_ConstantOutputTieBreak(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 5), k(5, 5), k(10, 10)})
	require.NoError(t, err)

	x, err := c.InputAt(5)
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(0), x, "must return the least In achieving output 5")
}

func TestSplitAtInput(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 100)})
	require.NoError(t, err)

	left, right, err := c.SplitAtInput(4)
	require.NoError(t, err)

	y, _ := left.OutputAt(4)
	assert.Equal(t, ordinate.Ord(40), y)
	y2, _ := right.OutputAt(4)
	assert.Equal(t, y, y2, "split curves must share the interpolated knot")
}

func TestSplitAtInput_NotInterior(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 100)})
	require.NoError(t, err)

	_, _, err = c.SplitAtInput(0)
	assert.ErrorIs(t, err, linear.ErrSplitNotInterior)
	_, _, err = c.SplitAtInput(10)
	assert.ErrorIs(t, err, linear.ErrSplitNotInterior)
}

func TestSplitAtEachInput_DedupAndOutOfBounds(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 100)})
	require.NoError(t, err)

	pieces, err := c.SplitAtEachInput([]ordinate.Ord{3, 3, 3.0000001, -5, 15, 7})
	require.NoError(t, err)
	assert.Len(t, pieces, 3)
}

func TestTrimInput(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 100)})
	require.NoError(t, err)

	iv, _ := interval.New(2, 8)
	trimmed, err := c.TrimInput(iv)
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(2), trimmed.ExtentsInput().Start)
	assert.Equal(t, ordinate.Ord(8), trimmed.ExtentsInput().End)
}

func TestTrimOutput(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 100)})
	require.NoError(t, err)

	iv, _ := interval.New(20, 80)
	trimmed, err := c.TrimOutput(iv)
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(20), trimmed.ExtentsOutput().Start)
	assert.Equal(t, ordinate.Ord(80), trimmed.ExtentsOutput().End)
}

func TestNew_TooFewKnots(t *testing.T) {
	_, err := linear.New([]linear.Knot{k(0, 0)})
	assert.ErrorIs(t, err, linear.ErrTooFewKnots)
}

func TestNew_NonIncreasingInput(t *testing.T) {
	_, err := linear.New([]linear.Knot{k(5, 0), k(1, 1)})
	assert.ErrorIs(t, err, linear.ErrNonIncreasingInput)
}

func TestClone_Independent(t *testing.T) {
	c, err := linear.New([]linear.Knot{k(0, 0), k(10, 100)})
	require.NoError(t, err)
	clone := c.Clone()
	assert.Equal(t, c.Knots(), clone.Knots())
}
