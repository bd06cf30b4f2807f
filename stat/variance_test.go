package stat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/AdrianoMourthe/onlinestat/stat"
)

func TestVarianceScenario(t *testing.T) {
	assert, _ := makeAR(t)

	v := stat.NewVariance(nil)
	assert.True(math.IsNaN(v.Value()))
	v.Absorb(1)
	assert.True(math.IsNaN(v.Value()))

	for _, x := range []float64{2, 3, 4} {
		v.Absorb(x)
	}
	assert.EqualValues(4, v.Count())
	assert.Equal(2.5, v.Mean())
	assert.InDelta(5.0/3.0, v.Value(), 1e-12)
	assert.InDelta(math.Sqrt(5.0/3.0), v.Stddev(), 1e-12)
}

func TestVarianceMatchesClosedForm(t *testing.T) {
	assert, _ := makeAR(t)

	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 10; trial++ {
		n := 2 + rng.Intn(2000)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.NormFloat64()*5 - 3
		}

		v := stat.NewVariance(nil)
		for _, x := range xs {
			v.Absorb(x)
		}
		want := sampleVariance(xs)
		assert.InEpsilon(want, v.Value(), 1e-9, "n=%d", n)
		assert.InDelta(sampleMean(xs), v.Mean(), 1e-9)
	}
}

func TestVarianceMerge(t *testing.T) {
	assert, _ := makeAR(t)

	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 800)
	for i := range xs {
		// the two halves get different means, exercising the shift correction
		xs[i] = rng.NormFloat64()
		if i >= 400 {
			xs[i] += 10
		}
	}

	whole := stat.NewVariance(nil)
	a, b := stat.NewVariance(nil), stat.NewVariance(nil)
	for i, x := range xs {
		whole.Absorb(x)
		if i < 400 {
			a.Absorb(x)
		} else {
			b.Absorb(x)
		}
	}
	a.Merge(b)
	assert.EqualValues(800, a.Count())
	assert.InEpsilon(whole.Value(), a.Value(), 1e-9)
	assert.InEpsilon(sampleVariance(xs), a.Value(), 1e-9)
	assert.InDelta(whole.Mean(), a.Mean(), 1e-9)
}

func TestVarianceMergeAssociative(t *testing.T) {
	assert, _ := makeAR(t)

	rng := rand.New(rand.NewSource(4))
	parts := make([]*stat.Variance, 8)
	whole := stat.NewVariance(nil)
	for p := range parts {
		parts[p] = stat.NewVariance(nil)
		for i := 0; i < 100+50*p; i++ {
			x := rng.NormFloat64()*float64(p+1) + float64(p)
			parts[p].Absorb(x)
			whole.Absorb(x)
		}
	}

	// pairwise reduction tree
	for len(parts) > 1 {
		var next []*stat.Variance
		for i := 0; i+1 < len(parts); i += 2 {
			parts[i].Merge(parts[i+1])
			next = append(next, parts[i])
		}
		if len(parts)%2 == 1 {
			next = append(next, parts[len(parts)-1])
		}
		parts = next
	}
	assert.Equal(whole.Count(), parts[0].Count())
	assert.InEpsilon(whole.Value(), parts[0].Value(), 1e-9)
}
