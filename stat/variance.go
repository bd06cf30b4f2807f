package stat

import (
	"math"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Variance tracks mean and variance with Welford's online update generalized to
// arbitrary weight policies. The stored second moment is the biased (population)
// form; the bias correction is applied only on Value, so that merges always
// operate on the uncorrected statistic.
type Variance struct {
	w      weights.Policy
	n      uint64
	mean   float64
	biased float64
}

// NewVariance creates a Variance. A nil policy defaults to equal weighting,
// under which Value matches the closed-form sample variance.
func NewVariance(w weights.Policy) *Variance {
	return &Variance{w: policyOrEqual(w)}
}

// Absorb implements Accumulator.
func (s *Variance) Absorb(x float64) {
	gamma := s.w.Advance(1)
	prev := s.mean
	s.mean = smoothing.Smooth(s.mean, x, gamma)
	s.biased = smoothing.Smooth(s.biased, (x-s.mean)*(x-prev), gamma)
	s.n++
}

// Merge folds another Variance into this one. Besides blending the two biased
// variances, the mean shift between the sides contributes γ(1-γ)(μ₂-μ₁)²
// (parallel-variance formula); without it the merged variance is understated
// whenever the sides have different means.
func (s *Variance) Merge(o *Variance) {
	gamma := mergeCoeff(s.n, o.n)
	delta := o.mean - s.mean
	s.biased = smoothing.Smooth(s.biased, o.biased, gamma) + gamma*(1-gamma)*delta*delta
	s.mean = smoothing.Smooth(s.mean, o.mean, gamma)
	s.n += o.n
	s.w.AdvanceSilent(int(o.n))
}

// Count implements Accumulator.
func (s *Variance) Count() uint64 {
	return s.n
}

// Mean returns the current mean, or NaN before the first observation.
func (s *Variance) Mean() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.mean
}

// Value returns the bias-corrected variance, or NaN before two observations.
func (s *Variance) Value() float64 {
	if s.n < 2 {
		return math.NaN()
	}
	return s.biased * s.w.Correction()
}

// Stddev returns the square root of Value.
func (s *Variance) Stddev() float64 {
	return math.Sqrt(s.Value())
}
