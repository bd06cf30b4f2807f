package smoothing_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
)

func TestSmooth(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(2.5, smoothing.Smooth(2, 4, 0.25))
	// gamma=1 is an exact replacement regardless of the old value
	assert.Equal(4.0, smoothing.Smooth(1e300, 4, 1))
	// gamma near 0 leaves the accumulator essentially unchanged
	assert.InDelta(2.0, smoothing.Smooth(2, 1e6, 1e-300), 1e-9)
}

func TestSmoothSlice(t *testing.T) {
	assert, _ := makeAR(t)

	dst := []float64{0, 2, -4}
	smoothing.SmoothSlice(dst, []float64{8, 2, 4}, 0.5)
	assert.Equal([]float64{4, 2, 0}, dst)

	smoothing.SmoothSlice(dst, []float64{1, 2, 3}, 1)
	assert.Equal([]float64{1, 2, 3}, dst)
}

func TestSmoothRank1(t *testing.T) {
	assert, _ := makeAR(t)

	a := mat.NewSymDense(2, []float64{4, 0, 0, 4})
	x := []float64{1, 2}
	smoothing.SmoothRank1(a, x, 0.5)

	// (1-γ)A + γxxᵀ with γ=0.5
	assert.InDelta(2.5, a.At(0, 0), 1e-12)
	assert.InDelta(1.0, a.At(0, 1), 1e-12)
	assert.InDelta(1.0, a.At(1, 0), 1e-12)
	assert.InDelta(4.0, a.At(1, 1), 1e-12)

	smoothing.SmoothRank1(a, x, 1)
	assert.InDelta(1.0, a.At(0, 0), 1e-12)
	assert.InDelta(2.0, a.At(0, 1), 1e-12)
	assert.InDelta(4.0, a.At(1, 1), 1e-12)
}
