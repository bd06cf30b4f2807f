package stat

import (
	"math"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Mean tracks the (policy-weighted) running mean.
type Mean struct {
	w weights.Policy
	n uint64
	m float64
}

// NewMean creates a Mean. A nil policy defaults to equal weighting, under which
// Value equals the arithmetic mean of all observations.
func NewMean(w weights.Policy) *Mean {
	return &Mean{w: policyOrEqual(w)}
}

// Absorb implements Accumulator.
func (s *Mean) Absorb(x float64) {
	s.m = smoothing.Smooth(s.m, x, s.w.Advance(1))
	s.n++
}

// Merge folds another Mean into this one as if observations had interleaved.
func (s *Mean) Merge(o *Mean) {
	s.m = smoothing.Smooth(s.m, o.m, mergeCoeff(s.n, o.n))
	s.n += o.n
	s.w.AdvanceSilent(int(o.n))
}

// Count implements Accumulator.
func (s *Mean) Count() uint64 {
	return s.n
}

// Value returns the current mean, or NaN before the first observation.
func (s *Mean) Value() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.m
}
