// Package ordinate defines Ord, the scalar coordinate type shared by every
// layer of this module (affine, bezier, linear, mapping, topology).
//
// 🚀 What is an Ord?
//
//	A finite real value with total order and a separate ε-equality relation.
//	Ord also carries ±Inf sentinels so that unbounded intervals
//	([interval.INF], infinite identity mappings, …) have a concrete value to
//	anchor on instead of a nullable "no bound" flag threaded through every
//	call site.
//
// ✨ Key properties:
//   - Total order on the finite domain. Div never returns NaN (see
//     ErrNumericDomain); Add, Sub and Mul are not checked, so e.g.
//     PosInf.Add(NegInf) is NaN.
//   - Arithmetic is available as bare operators (Ord is a named float64)
//     and as the methods Add, Sub, Mul, Neg and Div; only Div is checked,
//     rejecting the non-finite results a caller did not ask for.
//   - Equal is strict (==); Near is the ε-tolerant sibling
//     (DefaultEpsilon = 1e-6).
//
// Division by zero on any checked op fails with ErrNumericDomain.
package ordinate

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors for ordinate operations.
var (
	// ErrNumericDomain indicates a division by zero, a NaN input, or a
	// non-finite result where a finite Ord was required.
	ErrNumericDomain = errors.New("ordinate: numeric domain error")
)

// DefaultEpsilon is the default tolerance used by Near and by every
// ε-equality check elsewhere in this module.
const DefaultEpsilon = 1e-6

// Ord is a finite real scalar coordinate. It is a named float64 so that
// ordinary arithmetic (x + y, x < y, …) remains legal Go, while the checked
// Div below gives call sites that must reject non-finite results a single,
// documented place to do so.
type Ord float64

// PosInf and NegInf are the ±∞ sentinels so that unbounded intervals and
// infinite identity mappings have concrete anchors.
// math.Inf is not a constant expression in Go, so these are package
// variables rather than constants.
var (
	PosInf = Ord(math.Inf(1))
	NegInf = Ord(math.Inf(-1))

	posInf = PosInf
	negInf = NegInf
)

// Inf returns the positive (sign > 0) or negative (sign <= 0) infinite
// sentinel Ord.
func Inf(sign int) Ord {
	if sign > 0 {
		return posInf
	}
	return negInf
}

// IsInf reports whether x is either infinite sentinel.
func (x Ord) IsInf() bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x Ord) IsFinite() bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}

// Less reports x < y under the total order on the finite domain (±Inf
// compare correctly against any finite value and against each other).
func (x Ord) Less(y Ord) bool { return x < y }

// LessEq reports x <= y.
func (x Ord) LessEq(y Ord) bool { return x <= y }

// Equal is strict equality (==). Use Near for tolerance-based comparisons.
func (x Ord) Equal(y Ord) bool { return x == y }

// Near reports whether x and y are within eps of each other. eps < 0 is
// treated as 0 (strict equality).
func (x Ord) Near(y Ord, eps Ord) bool {
	if eps < 0 {
		eps = 0
	}
	d := x - y
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// NearDefault is Near with DefaultEpsilon.
func (x Ord) NearDefault(y Ord) bool { return x.Near(y, DefaultEpsilon) }

// Add returns x + y.
func (x Ord) Add(y Ord) Ord { return x + y }

// Sub returns x - y.
func (x Ord) Sub(y Ord) Ord { return x - y }

// Mul returns x * y.
func (x Ord) Mul(y Ord) Ord { return x * y }

// Neg returns -x.
func (x Ord) Neg() Ord { return -x }

// Div returns x / y, or ErrNumericDomain if y is zero, the result is NaN, or
// a finite x yields an infinite result (overflow). An infinite x divided by
// a finite y returns the infinity.
func (x Ord) Div(y Ord) (Ord, error) {
	if y == 0 {
		return 0, ErrNumericDomain
	}
	r := x / y
	if math.IsNaN(float64(r)) {
		return 0, ErrNumericDomain
	}
	if r.IsInf() && !x.IsInf() {
		return 0, ErrNumericDomain
	}
	return r, nil
}

// Min returns the smaller of x and y.
func Min(x, y Ord) Ord {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Ord) Ord {
	if x > y {
		return x
	}
	return y
}

// String renders x for diagnostics.
func (x Ord) String() string {
	switch {
	case x == posInf:
		return "+Inf"
	case x == negInf:
		return "-Inf"
	default:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	}
}
