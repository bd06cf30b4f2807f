package fit

import (
	"math"

	"github.com/AdrianoMourthe/onlinestat/stat"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Gamma fits a gamma distribution by method of moments over a Variance delegate:
// shape = μ²/σ², scale = σ²/μ.
type Gamma struct {
	v *stat.Variance
}

// NewGamma creates a Gamma fitter. A nil policy defaults to equal weighting.
func NewGamma(w weights.Policy) *Gamma {
	return &Gamma{v: stat.NewVariance(w)}
}

// Absorb implements the accumulator contract by delegation.
func (f *Gamma) Absorb(x float64) {
	f.v.Absorb(x)
}

// Merge folds another Gamma into this one.
func (f *Gamma) Merge(o *Gamma) {
	f.v.Merge(o.v)
}

// Count returns the total number of observations absorbed.
func (f *Gamma) Count() uint64 {
	return f.v.Count()
}

// Value returns (shape, scale). Both are NaN before two observations or when the
// moment estimates are degenerate (zero mean or variance).
func (f *Gamma) Value() (shape, scale float64) {
	m, v := f.v.Mean(), f.v.Value()
	if !(m != 0 && v > 0) {
		return math.NaN(), math.NaN()
	}
	return m * m / v, v / m
}

// Beta fits a beta distribution by method of moments over a Variance delegate.
type Beta struct {
	v *stat.Variance
}

// NewBeta creates a Beta fitter. A nil policy defaults to equal weighting.
func NewBeta(w weights.Policy) *Beta {
	return &Beta{v: stat.NewVariance(w)}
}

// Absorb implements the accumulator contract by delegation.
func (f *Beta) Absorb(x float64) {
	f.v.Absorb(x)
}

// Merge folds another Beta into this one.
func (f *Beta) Merge(o *Beta) {
	f.v.Merge(o.v)
}

// Count returns the total number of observations absorbed.
func (f *Beta) Count() uint64 {
	return f.v.Count()
}

// Value returns (alpha, beta). Both are NaN before two observations or when the
// moment estimates fall outside the feasible region σ² < μ(1-μ).
func (f *Beta) Value() (alpha, beta float64) {
	m, v := f.v.Mean(), f.v.Value()
	if !(v > 0 && m > 0 && m < 1 && v < m*(1-m)) {
		return math.NaN(), math.NaN()
	}
	t := m*(1-m)/v - 1
	return m * t, (1 - m) * t
}
