package stat

import (
	"math"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Moments tracks the first four raw moments E[X^k]. Raw moments blend linearly,
// so both Absorb and Merge are plain smoothing with no shift correction.
type Moments struct {
	w weights.Policy
	n uint64
	m [4]float64
}

// NewMoments creates a Moments. A nil policy defaults to equal weighting.
func NewMoments(w weights.Policy) *Moments {
	return &Moments{w: policyOrEqual(w)}
}

// Absorb implements Accumulator.
func (s *Moments) Absorb(x float64) {
	gamma := s.w.Advance(1)
	xk := 1.0
	for k := range s.m {
		xk *= x
		s.m[k] = smoothing.Smooth(s.m[k], xk, gamma)
	}
	s.n++
}

// Merge folds another Moments into this one.
func (s *Moments) Merge(o *Moments) {
	gamma := mergeCoeff(s.n, o.n)
	for k := range s.m {
		s.m[k] = smoothing.Smooth(s.m[k], o.m[k], gamma)
	}
	s.n += o.n
	s.w.AdvanceSilent(int(o.n))
}

// Count implements Accumulator.
func (s *Moments) Count() uint64 {
	return s.n
}

// Value returns the raw moments E[X], E[X²], E[X³], E[X⁴].
func (s *Moments) Value() [4]float64 {
	return s.m
}

// Mean returns the first moment, or NaN before the first observation.
func (s *Moments) Mean() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.m[0]
}

// Variance returns the bias-corrected variance, or NaN before two observations.
func (s *Moments) Variance() float64 {
	if s.n < 2 {
		return math.NaN()
	}
	return (s.m[1] - s.m[0]*s.m[0]) * s.w.Correction()
}

// Skewness returns the sample skewness, or NaN before two observations.
func (s *Moments) Skewness() float64 {
	if s.n < 2 {
		return math.NaN()
	}
	mu := s.m[0]
	v := s.m[1] - mu*mu
	return (s.m[2] - mu*(3*v+mu*mu)) / math.Pow(v, 1.5)
}

// Kurtosis returns the excess kurtosis, or NaN before two observations.
func (s *Moments) Kurtosis() float64 {
	if s.n < 2 {
		return math.NaN()
	}
	mu := s.m[0]
	v := s.m[1] - mu*mu
	return (s.m[3]-4*mu*s.m[2]+6*mu*mu*s.m[1]-3*mu*mu*mu*mu)/(v*v) - 3
}
