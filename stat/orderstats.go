package stat

import (
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// ErrBatchMismatch indicates a merge between OrderStats of different batch sizes.
var ErrBatchMismatch = errors.New("order statistic batch sizes differ")

// OrderStats approximates the p order statistics of the stream. Raw observations
// are buffered; each time the buffer holds p values it is sorted in place and the
// running order-statistic vector is smoothed toward it. The unit of weighting is
// therefore a batch, not a single observation: the batch policy defaults to equal
// weighting (coefficient 1/batchesSeen).
type OrderStats struct {
	bw    weights.Policy
	n     uint64
	buf   []float64
	value []float64
}

// NewOrderStats creates an OrderStats over batches of p observations.
// A nil batch policy defaults to equal weighting over batches.
func NewOrderStats(p int, batchPolicy weights.Policy) (*OrderStats, error) {
	if p < 1 {
		return nil, errors.New("batch size must be positive")
	}
	return &OrderStats{
		bw:    policyOrEqual(batchPolicy),
		buf:   make([]float64, 0, p),
		value: make([]float64, p),
	}, nil
}

// Absorb implements Accumulator. NaN observations have no place in an order
// statistic and are dropped with a warning.
func (s *OrderStats) Absorb(x float64) {
	if math.IsNaN(x) {
		logger.Warn("ignoring NaN observation", zap.Int("batch-size", cap(s.buf)))
		return
	}
	s.buf = append(s.buf, x)
	s.n++
	if len(s.buf) < cap(s.buf) {
		return
	}
	sort.Float64s(s.buf)
	smoothing.SmoothSlice(s.value, s.buf, s.bw.Advance(1))
	s.buf = s.buf[:0]
}

// Merge folds another OrderStats into this one. Completed batches are blended by
// batch counts; the peer's partial buffer is replayed observation by observation.
func (s *OrderStats) Merge(o *OrderStats) error {
	if len(s.value) != len(o.value) {
		return ErrBatchMismatch
	}
	a, b := s.bw.Count(), o.bw.Count()
	if b > 0 {
		smoothing.SmoothSlice(s.value, o.value, mergeCoeff(a, b))
		s.bw.AdvanceSilent(int(b))
		s.n += b * uint64(len(o.value))
	}
	for _, x := range o.buf {
		s.Absorb(x)
	}
	return nil
}

// Count implements Accumulator.
func (s *OrderStats) Count() uint64 {
	return s.n
}

// Value returns a copy of the order-statistic vector. Entries are zero until the
// first batch completes; observations in a partial batch do not contribute.
func (s *OrderStats) Value() []float64 {
	out := make([]float64, len(s.value))
	copy(out, s.value)
	return out
}

// Quantile returns the tau-quantile by linear interpolation over the
// order-statistic vector, or NaN before the first completed batch.
func (s *OrderStats) Quantile(tau float64) float64 {
	if s.bw.Count() == 0 || math.IsNaN(tau) || tau < 0 || tau > 1 {
		return math.NaN()
	}
	p := len(s.value)
	if p == 1 {
		return s.value[0]
	}
	pos := tau * float64(p-1)
	lo := int(pos)
	if lo >= p-1 {
		return s.value[p-1]
	}
	frac := pos - float64(lo)
	return s.value[lo] + frac*(s.value[lo+1]-s.value[lo])
}

// IQR returns the interquartile range Quantile(0.75)-Quantile(0.25), or NaN
// before the first completed batch.
func (s *OrderStats) IQR() float64 {
	return s.Quantile(0.75) - s.Quantile(0.25)
}
