package stat

import (
	"math"
	"slices"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// DefaultMMEpsilon keeps the majorizer weight 1/(|y-v|+ε) finite at y=v.
const DefaultMMEpsilon = 1e-9

// QuantileMM estimates quantiles by majorize-minimize: each step minimizes a
// quadratic majorizer of the pinball loss, giving the closed-form update
// v = (s + o·(2τ-1)) / t over smoothed auxiliary sums s, t and a shared scalar o.
// It converges faster and more stably than a single noisy subgradient step.
type QuantileMM struct {
	w    weights.Policy
	n    uint64
	taus []float64
	est  []float64
	s    []float64
	t    []float64
	o    float64
	eps  float64
}

// NewQuantileMM creates a QuantileMM. Nil levels default to quartiles; a nil
// policy defaults to LearningRate(0.6, 0).
func NewQuantileMM(levels []float64, w weights.Policy) (*QuantileMM, error) {
	taus, e := cloneLevels(levels)
	if e != nil {
		return nil, e
	}
	if w == nil {
		w = defaultQuantilePolicy()
	}
	k := len(taus)
	return &QuantileMM{
		w:    w,
		taus: taus,
		est:  make([]float64, k),
		s:    make([]float64, k),
		t:    make([]float64, k),
		eps:  DefaultMMEpsilon,
	}, nil
}

// Absorb implements Accumulator.
func (q *QuantileMM) Absorb(x float64) {
	gamma := q.w.Advance(1)
	q.n++
	if q.n == 1 {
		for i := range q.est {
			q.est[i] = x
		}
	}
	q.o = smoothing.Smooth(q.o, 1, gamma)
	for i, tau := range q.taus {
		w := 1 / (math.Abs(x-q.est[i]) + q.eps)
		q.s[i] = smoothing.Smooth(q.s[i], w*x, gamma)
		q.t[i] = smoothing.Smooth(q.t[i], w, gamma)
		if q.t[i] > 0 {
			q.est[i] = (q.s[i] + q.o*(2*tau-1)) / q.t[i]
		}
	}
}

// Merge folds another QuantileMM into this one, blending the auxiliary sums and
// recomputing the estimates from the merged sums.
func (q *QuantileMM) Merge(o *QuantileMM) error {
	if !slices.Equal(q.taus, o.taus) {
		return ErrLevelMismatch
	}
	gamma := mergeCoeff(q.n, o.n)
	smoothing.SmoothSlice(q.s, o.s, gamma)
	smoothing.SmoothSlice(q.t, o.t, gamma)
	q.o = smoothing.Smooth(q.o, o.o, gamma)
	for i, tau := range q.taus {
		if q.t[i] > 0 {
			q.est[i] = (q.s[i] + q.o*(2*tau-1)) / q.t[i]
		}
	}
	q.n += o.n
	q.w.AdvanceSilent(int(o.n))
	return nil
}

// Count implements Accumulator.
func (q *QuantileMM) Count() uint64 {
	return q.n
}

// Levels returns the configured quantile levels.
func (q *QuantileMM) Levels() []float64 {
	return slices.Clone(q.taus)
}

// Value returns the current quantile estimates, one per level.
func (q *QuantileMM) Value() []float64 {
	return slices.Clone(q.est)
}

// Quantile returns the estimate for the given level, or NaN if the level is not
// tracked.
func (q *QuantileMM) Quantile(tau float64) float64 {
	for i, t := range q.taus {
		if t == tau {
			return q.est[i]
		}
	}
	return math.NaN()
}
