// Package projection defines Result, the sum type every point/interval
// projection in packages mapping and topology returns: either a successful
// ordinate, a successful interval, or an explicit out-of-bounds tag.
//
// "Out of bounds" from a point projection is ordinary control flow, not a
// Go error — callers branch on Result instead of unwrapping an error.
package projection

import (
	"errors"

	"github.com/katalvlaran/topology/interval"
	"github.com/katalvlaran/topology/ordinate"
)

// ErrOutOfBounds is returned by the .ordinate()/.interval() accessors when
// the Result does not carry the requested kind of value.
var ErrOutOfBounds = errors.New("projection: out of bounds")

// kind tags which field of Result is meaningful.
type kind uint8

const (
	kindOutOfBounds kind = iota
	kindOrdinate
	kindInterval
)

// Result is the sum of SuccessOrdinate, SuccessInterval, and OutOfBounds.
// The zero value is OutOfBounds.
type Result struct {
	k   kind
	ord ordinate.Ord
	iv  interval.ContinuousInterval
}

// OutOfBounds is the Result value signaling that a projection query fell
// outside the bounds of the mapping/topology it was asked of.
var OutOfBounds = Result{k: kindOutOfBounds}

// SuccessOrdinate wraps a successfully projected ordinate.
func SuccessOrdinate(x ordinate.Ord) Result {
	return Result{k: kindOrdinate, ord: x}
}

// SuccessInterval wraps a successfully projected interval.
func SuccessInterval(iv interval.ContinuousInterval) Result {
	return Result{k: kindInterval, iv: iv}
}

// IsSuccess reports whether the Result carries any successful value.
func (r Result) IsSuccess() bool { return r.k != kindOutOfBounds }

// IsOutOfBounds reports whether the Result is the OutOfBounds tag.
func (r Result) IsOutOfBounds() bool { return r.k == kindOutOfBounds }

// Ordinate returns the wrapped ordinate, or ErrOutOfBounds if the Result is
// not a SuccessOrdinate.
func (r Result) Ordinate() (ordinate.Ord, error) {
	if r.k != kindOrdinate {
		return 0, ErrOutOfBounds
	}
	return r.ord, nil
}

// Interval returns the wrapped interval, or ErrOutOfBounds if the Result is
// not a SuccessInterval.
func (r Result) Interval() (interval.ContinuousInterval, error) {
	if r.k != kindInterval {
		return interval.ContinuousInterval{}, ErrOutOfBounds
	}
	return r.iv, nil
}

// String renders r for diagnostics.
func (r Result) String() string {
	switch r.k {
	case kindOrdinate:
		return "Ordinate(" + r.ord.String() + ")"
	case kindInterval:
		return "Interval(" + r.iv.String() + ")"
	default:
		return "OutOfBounds"
	}
}
