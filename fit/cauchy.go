package fit

import (
	"math"

	"github.com/AdrianoMourthe/onlinestat/stat"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

var cauchyLevels = []float64{0.25, 0.5, 0.75}

// Cauchy fits a Cauchy distribution, whose moments do not exist, from streaming
// quartile estimates: location is the median and scale is half the interquartile
// range. The quartiles come from a majorize-minimize quantile delegate.
type Cauchy struct {
	q *stat.QuantileMM
}

// NewCauchy creates a Cauchy fitter. A nil policy defaults to the quantile
// estimator's learning-rate policy.
func NewCauchy(w weights.Policy) *Cauchy {
	q, e := stat.NewQuantileMM(cauchyLevels, w)
	if e != nil {
		panic(e)
	}
	return &Cauchy{q: q}
}

// Absorb implements the accumulator contract by delegation.
func (f *Cauchy) Absorb(x float64) {
	f.q.Absorb(x)
}

// Merge folds another Cauchy into this one.
func (f *Cauchy) Merge(o *Cauchy) {
	if e := f.q.Merge(o.q); e != nil {
		panic(e) // identical fixed level sets
	}
}

// Count returns the total number of observations absorbed.
func (f *Cauchy) Count() uint64 {
	return f.q.Count()
}

// Value returns (location, scale). Both are NaN before two observations.
func (f *Cauchy) Value() (location, scale float64) {
	if f.q.Count() < 2 {
		return math.NaN(), math.NaN()
	}
	v := f.q.Value()
	return v[1], (v[2] - v[0]) / 2
}
