package interval_test

import (
	"testing"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidBounds(t *testing.T) {
	_, err := interval.New(5, 2)
	assert.ErrorIs(t, err, interval.ErrInvalidBounds)
}

func TestOverlaps(t *testing.T) {
	iv, err := interval.New(0, 10)
	require.NoError(t, err)

	assert.True(t, iv.Overlaps(0))
	assert.True(t, iv.Overlaps(5))
	assert.False(t, iv.Overlaps(10), "right-open: End is excluded")
	assert.False(t, iv.Overlaps(-1))
}

func TestOverlaps_Instant(t *testing.T) {
	inst := interval.Instant(3)
	assert.True(t, inst.Overlaps(3))
	assert.False(t, inst.Overlaps(4))
}

func TestIntersect(t *testing.T) {
	a := interval.ContinuousInterval{Start: 0, End: 10}
	b := interval.ContinuousInterval{Start: 5, End: 15}
	got, ok := interval.Intersect(a, b)
	require.True(t, ok)
	assert.Equal(t, ordinate.Ord(5), got.Start)
	assert.Equal(t, ordinate.Ord(10), got.End)

	c := interval.ContinuousInterval{Start: 20, End: 30}
	_, ok = interval.Intersect(a, c)
	assert.False(t, ok, "disjoint intervals must report no intersection")
}

func TestIntersect_Commutative_Idempotent(t *testing.T) {
	a := interval.ContinuousInterval{Start: 0, End: 10}
	b := interval.ContinuousInterval{Start: 5, End: 15}
	ab, _ := interval.Intersect(a, b)
	ba, _ := interval.Intersect(b, a)
	assert.Equal(t, ab, ba)

	aa, _ := interval.Intersect(a, a)
	assert.Equal(t, a, aa)
}

func TestExtend_Commutative_Idempotent(t *testing.T) {
	a := interval.ContinuousInterval{Start: 0, End: 10}
	b := interval.ContinuousInterval{Start: 5, End: 15}
	assert.Equal(t, interval.Extend(a, b), interval.Extend(b, a))
	assert.Equal(t, a, interval.Extend(a, a))
}

func TestExtend_WithInfinite(t *testing.T) {
	a := interval.ContinuousInterval{Start: 0, End: 10}
	got := interval.Extend(a, interval.INF)
	assert.Equal(t, interval.INF, got)
}

func TestIsInstant(t *testing.T) {
	assert.True(t, interval.ZERO.IsInstant())
	assert.True(t, interval.Instant(7).IsInstant())
	iv, _ := interval.New(0, 1)
	assert.False(t, iv.IsInstant())
}
