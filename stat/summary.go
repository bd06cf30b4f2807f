package stat

import (
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Summary bundles Variance and Extrema into the usual one-line description of a
// stream: count, mean, variance, stdev, min, max.
type Summary struct {
	v *Variance
	x *Extrema
}

// NewSummary creates a Summary. A nil policy defaults to equal weighting.
func NewSummary(w weights.Policy) *Summary {
	return &Summary{v: NewVariance(w), x: NewExtrema()}
}

// Absorb implements Accumulator.
func (s *Summary) Absorb(x float64) {
	s.v.Absorb(x)
	s.x.Absorb(x)
}

// Merge folds another Summary into this one.
func (s *Summary) Merge(o *Summary) {
	s.v.Merge(o.v)
	s.x.Merge(o.x)
}

// Count implements Accumulator.
func (s *Summary) Count() uint64 {
	return s.v.Count()
}

// Read returns current counters as Snapshot.
func (s *Summary) Read() Snapshot {
	return Snapshot{
		Count:    s.Count(),
		Mean:     s.v.Mean(),
		Variance: s.v.Value(),
		Stdev:    s.v.Stddev(),
		Min:      s.x.Min(),
		Max:      s.x.Max(),
	}
}
