package ordinate_test

import (
	"testing"

	"github.com/katalvlaran/topology/ordinate"
	"github.com/stretchr/testify/assert"
)

func TestOrd_Near(t *testing.T) {
	for _, tc := range []struct {
		name    string
		a, b    ordinate.Ord
		eps     ordinate.Ord
		wantNear bool
	}{
		{"exact", 1.0, 1.0, 0, true},
		{"within_eps", 1.0, 1.0000001, ordinate.DefaultEpsilon, true},
		{"outside_eps", 1.0, 1.1, ordinate.DefaultEpsilon, false},
		{"negative_eps_treated_as_zero", 1.0, 1.0000001, -1, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantNear, tc.a.Near(tc.b, tc.eps))
		})
	}
}

func TestOrd_Div(t *testing.T) {
	r, err := ordinate.Ord(10).Div(2)
	assert.NoError(t, err)
	assert.Equal(t, ordinate.Ord(5), r)

	_, err = ordinate.Ord(10).Div(0)
	assert.ErrorIs(t, err, ordinate.ErrNumericDomain)
}

func TestOrd_Inf(t *testing.T) {
	assert.True(t, ordinate.PosInf.IsInf())
	assert.True(t, ordinate.NegInf.IsInf())
	assert.False(t, ordinate.Ord(0).IsInf())
	assert.True(t, ordinate.NegInf.Less(ordinate.PosInf))
	assert.True(t, ordinate.Ord(0).IsFinite())
	assert.False(t, ordinate.PosInf.IsFinite())
}

func TestOrd_MinMax(t *testing.T) {
	assert.Equal(t, ordinate.Ord(1), ordinate.Min(1, 2))
	assert.Equal(t, ordinate.Ord(2), ordinate.Max(1, 2))
}

func TestOrd_String(t *testing.T) {
	assert.Equal(t, "+Inf", ordinate.PosInf.String())
	assert.Equal(t, "-Inf", ordinate.NegInf.String())
	assert.Equal(t, "3.5", ordinate.Ord(3.5).String())
}
