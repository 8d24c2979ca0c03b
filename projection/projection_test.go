package projection_test

import (
	"testing"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
	"github.com/katalvlaran/topology/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Ordinate(t *testing.T) {
	r := projection.SuccessOrdinate(4)
	v, err := r.Ordinate()
	require.NoError(t, err)
	assert.Equal(t, ordinate.Ord(4), v)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsOutOfBounds())
}

func TestResult_Interval(t *testing.T) {
	iv, _ := interval.New(0, 5)
	r := projection.SuccessInterval(iv)
	got, err := r.Interval()
	require.NoError(t, err)
	assert.Equal(t, iv, got)

	_, err = r.Ordinate()
	assert.ErrorIs(t, err, projection.ErrOutOfBounds)
}

func TestResult_OutOfBounds(t *testing.T) {
	r := projection.OutOfBounds
	assert.True(t, r.IsOutOfBounds())
	assert.False(t, r.IsSuccess())

	_, err := r.Ordinate()
	assert.ErrorIs(t, err, projection.ErrOutOfBounds)
	_, err = r.Interval()
	assert.ErrorIs(t, err, projection.ErrOutOfBounds)
}

func TestResult_ZeroValueIsOutOfBounds(t *testing.T) {
	var r projection.Result
	assert.True(t, r.IsOutOfBounds())
}
