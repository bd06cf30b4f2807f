// Package weights implements the weight policies that drive exponential-smoothing
// style updates of online statistics.
//
// A Policy converts "how many new observations arrived" into a blend coefficient
// γ∈(0,1] consumed by the smoothing primitives. Under the equal policy the
// coefficient decays as 1/k so that a smoothed value equals a plain running
// average; exponential policies hold the coefficient constant to bias toward
// recent observations; learning-rate policies decay per update step and are used
// by stochastic-approximation estimators such as streaming quantiles.
package weights

import (
	"errors"
	"math"

	"github.com/zyedidia/generic"
)

// ErrDecay indicates an exponential decay parameter outside [0,1].
var ErrDecay = errors.New("decay outside [0,1]")

// Policy converts an observation count into a blend coefficient.
//
// A Policy instance is owned by one accumulator (or shared among the members of a
// composite accumulator) and must not be advanced concurrently.
type Policy interface {
	// Advance records n new observations and returns the blend coefficient for
	// the next smoothing step. The coefficient is always in (0,1].
	Advance(n int) float64

	// AdvanceSilent records n new observations without producing a coefficient.
	// Accumulators use it to keep the count honest when data arrives through a
	// side channel, such as a merge.
	AdvanceSilent(n int)

	// Count returns the total number of observations recorded.
	Count() uint64

	// Correction returns the bias-correction factor for a second moment
	// accumulated under this policy: n/(n-1) for equal weighting once n>1,
	// otherwise 1. It is applied only when reporting, never stored.
	Correction() float64

	// Reset clears all counters.
	Reset()
}

// Equal weights every observation identically: the k-th coefficient is n/k,
// so smoothing under it reproduces the true running average.
type Equal struct {
	n uint64
}

// NewEqual creates an equal weight policy.
func NewEqual() *Equal {
	return &Equal{}
}

// Advance implements Policy.
func (w *Equal) Advance(n int) float64 {
	w.n += uint64(n)
	return float64(n) / float64(w.n)
}

// AdvanceSilent implements Policy.
func (w *Equal) AdvanceSilent(n int) {
	w.n += uint64(n)
}

// Count implements Policy.
func (w *Equal) Count() uint64 {
	return w.n
}

// Correction implements Policy.
func (w *Equal) Correction() float64 {
	if w.n < 2 {
		return 1
	}
	return float64(w.n) / float64(w.n-1)
}

// Reset implements Policy.
func (w *Equal) Reset() {
	w.n = 0
}

// Exponential returns a fixed coefficient λ on every advance, discounting old
// observations geometrically.
type Exponential struct {
	n      uint64
	lambda float64
}

// NewExponential creates an exponential weight policy with the given decay.
func NewExponential(decay float64) (*Exponential, error) {
	if math.IsNaN(decay) || decay < 0 || decay > 1 {
		return nil, ErrDecay
	}
	return &Exponential{lambda: decay}, nil
}

// NewExponentialLookback creates an exponential weight policy with decay
// 2/(lookback+1), the EMA convention for an n-sample lookback window.
func NewExponentialLookback(lookback int) *Exponential {
	lookback = generic.Max(lookback, 1)
	return &Exponential{lambda: 2 / float64(lookback+1)}
}

// Advance implements Policy.
func (w *Exponential) Advance(n int) float64 {
	w.n += uint64(n)
	return w.lambda
}

// AdvanceSilent implements Policy.
func (w *Exponential) AdvanceSilent(n int) {
	w.n += uint64(n)
}

// Count implements Policy.
func (w *Exponential) Count() uint64 {
	return w.n
}

// Correction implements Policy.
func (w *Exponential) Correction() float64 {
	return 1
}

// Reset implements Policy.
func (w *Exponential) Reset() {
	w.n = 0
}

// BoundedExponential behaves like Equal until the 1/k coefficient would fall
// below λ, then holds at λ: equal-weight warm-up followed by exponential hold.
type BoundedExponential struct {
	n      uint64
	lambda float64
}

// NewBoundedExponential creates a bounded exponential weight policy.
func NewBoundedExponential(decay float64) (*BoundedExponential, error) {
	if math.IsNaN(decay) || decay < 0 || decay > 1 {
		return nil, ErrDecay
	}
	return &BoundedExponential{lambda: decay}, nil
}

// Advance implements Policy.
func (w *BoundedExponential) Advance(n int) float64 {
	w.n += uint64(n)
	return generic.Max(float64(n)/float64(w.n), w.lambda)
}

// AdvanceSilent implements Policy.
func (w *BoundedExponential) AdvanceSilent(n int) {
	w.n += uint64(n)
}

// Count implements Policy.
func (w *BoundedExponential) Count() uint64 {
	return w.n
}

// Correction implements Policy.
func (w *BoundedExponential) Correction() float64 {
	return 1
}

// Reset implements Policy.
func (w *BoundedExponential) Reset() {
	w.n = 0
}
