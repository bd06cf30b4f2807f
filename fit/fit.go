// Package fit estimates parameters of standard distribution families from a
// stream, by method of moments or MLE over delegate accumulators from stat and
// vecstat. Fitters report NaN parameters until they have seen at least two
// observations; they never fail on degenerate data.
package fit

import (
	"math"

	"github.com/AdrianoMourthe/onlinestat/stat"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Normal fits a normal distribution by MLE over a Variance delegate.
type Normal struct {
	v *stat.Variance
}

// NewNormal creates a Normal fitter. A nil policy defaults to equal weighting.
func NewNormal(w weights.Policy) *Normal {
	return &Normal{v: stat.NewVariance(w)}
}

// Absorb implements the accumulator contract by delegation.
func (f *Normal) Absorb(x float64) {
	f.v.Absorb(x)
}

// Merge folds another Normal into this one.
func (f *Normal) Merge(o *Normal) {
	f.v.Merge(o.v)
}

// Count returns the total number of observations absorbed.
func (f *Normal) Count() uint64 {
	return f.v.Count()
}

// Value returns (mu, sigma). Sigma is NaN before two observations.
func (f *Normal) Value() (mu, sigma float64) {
	return f.v.Mean(), f.v.Stddev()
}

// LogNormal fits a log-normal distribution: a Variance over log(y).
// Non-positive observations are outside the support and are skipped.
type LogNormal struct {
	v       *stat.Variance
	skipped uint64
}

// NewLogNormal creates a LogNormal fitter. A nil policy defaults to equal weighting.
func NewLogNormal(w weights.Policy) *LogNormal {
	return &LogNormal{v: stat.NewVariance(w)}
}

// Absorb implements the accumulator contract by delegation.
func (f *LogNormal) Absorb(x float64) {
	if x <= 0 {
		f.skipped++
		return
	}
	f.v.Absorb(math.Log(x))
}

// Merge folds another LogNormal into this one.
func (f *LogNormal) Merge(o *LogNormal) {
	f.v.Merge(o.v)
	f.skipped += o.skipped
}

// Count returns the number of observations absorbed, excluding skipped ones.
func (f *LogNormal) Count() uint64 {
	return f.v.Count()
}

// Skipped returns the number of non-positive observations ignored.
func (f *LogNormal) Skipped() uint64 {
	return f.skipped
}

// Value returns (mu, sigma) of the underlying normal on the log scale.
// Sigma is NaN before two observations.
func (f *LogNormal) Value() (mu, sigma float64) {
	return f.v.Mean(), f.v.Stddev()
}
