package fit_test

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/AdrianoMourthe/onlinestat/fit"
)

func TestNormal(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewNormal(nil)
	mu, sigma := f.Value()
	assert.True(math.IsNaN(mu))
	assert.True(math.IsNaN(sigma))

	src := distuv.Normal{Mu: -2, Sigma: 3, Src: rand.NewSource(20)}
	for i := 0; i < 100000; i++ {
		f.Absorb(src.Rand())
	}
	mu, sigma = f.Value()
	assert.InDelta(-2.0, mu, 0.05)
	assert.InDelta(3.0, sigma, 0.05)

	o := fit.NewNormal(nil)
	for i := 0; i < 100000; i++ {
		o.Absorb(src.Rand())
	}
	f.Merge(o)
	assert.EqualValues(200000, f.Count())
	mu, _ = f.Value()
	assert.InDelta(-2.0, mu, 0.05)
}

func TestLogNormal(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewLogNormal(nil)
	src := distuv.LogNormal{Mu: 1, Sigma: 0.5, Src: rand.NewSource(21)}
	for i := 0; i < 100000; i++ {
		f.Absorb(src.Rand())
	}
	f.Absorb(-1) // outside support
	assert.EqualValues(1, f.Skipped())
	assert.EqualValues(100000, f.Count())

	mu, sigma := f.Value()
	assert.InDelta(1.0, mu, 0.02)
	assert.InDelta(0.5, sigma, 0.02)
}

func TestGamma(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewGamma(nil)
	shape, scale := f.Value()
	assert.True(math.IsNaN(shape))
	assert.True(math.IsNaN(scale))

	// distuv.Gamma's Beta is a rate; scale = 1/rate = 0.5
	src := distuv.Gamma{Alpha: 3, Beta: 2, Src: rand.NewSource(22)}
	for i := 0; i < 200000; i++ {
		f.Absorb(src.Rand())
	}
	shape, scale = f.Value()
	assert.InDelta(3.0, shape, 0.1)
	assert.InDelta(0.5, scale, 0.05)
}

func TestBeta(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewBeta(nil)
	src := distuv.Beta{Alpha: 2, Beta: 5, Src: rand.NewSource(23)}
	for i := 0; i < 200000; i++ {
		f.Absorb(src.Rand())
	}
	alpha, beta := f.Value()
	assert.InDelta(2.0, alpha, 0.1)
	assert.InDelta(5.0, beta, 0.25)
}

func TestBetaDegenerate(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewBeta(nil)
	// constant stream: zero variance, parameters remain undefined
	for i := 0; i < 10; i++ {
		f.Absorb(0.5)
	}
	alpha, beta := f.Value()
	assert.True(math.IsNaN(alpha))
	assert.True(math.IsNaN(beta))
}

func TestCauchy(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewCauchy(nil)
	location, scale := f.Value()
	assert.True(math.IsNaN(location))
	assert.True(math.IsNaN(scale))

	// Cauchy(1, 2) by inverse transform
	rng := rand.New(rand.NewSource(24))
	for i := 0; i < 200000; i++ {
		u := rng.Float64()
		f.Absorb(1 + 2*math.Tan(math.Pi*(u-0.5)))
	}
	location, scale = f.Value()
	assert.InDelta(1.0, location, 0.2)
	assert.InDelta(2.0, scale, 0.3)
}

func TestCategorical(t *testing.T) {
	assert, _ := makeAR(t)

	f := fit.NewCategorical[string]()
	assert.Empty(f.Value())

	for i := 0; i < 6; i++ {
		f.Absorb("a")
	}
	for i := 0; i < 3; i++ {
		f.Absorb("b")
	}
	f.Absorb("c")
	assert.EqualValues(10, f.Count())
	p := f.Value()
	assert.InDelta(0.6, p["a"], 1e-12)
	assert.InDelta(0.3, p["b"], 1e-12)
	assert.InDelta(0.1, p["c"], 1e-12)

	// merge takes the union of key universes
	o := fit.NewCategorical[string]()
	for i := 0; i < 10; i++ {
		o.Absorb("d")
	}
	f.Merge(o)
	assert.EqualValues(20, f.Count())
	p = f.Value()
	assert.InDelta(0.3, p["a"], 1e-12)
	assert.InDelta(0.5, p["d"], 1e-12)
}

func TestMultinomial(t *testing.T) {
	assert, require := makeAR(t)

	f, e := fit.NewMultinomial(3, nil)
	require.NoError(e)
	assert.Equal([]float64{0, 0, 0}, f.Value())

	require.NoError(f.Absorb([]float64{6, 3, 1}))
	require.NoError(f.Absorb([]float64{12, 6, 2}))
	assert.Error(f.Absorb([]float64{1, 2}))
	assert.EqualValues(2, f.Count())

	p := f.Value()
	assert.InDelta(0.6, p[0], 1e-12)
	assert.InDelta(0.3, p[1], 1e-12)
	assert.InDelta(0.1, p[2], 1e-12)
}

func TestMvNormal(t *testing.T) {
	assert, require := makeAR(t)

	f, e := fit.NewMvNormal(2, nil)
	require.NoError(e)

	src := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(25)}
	const n = 100000
	for i := 0; i < n; i++ {
		z0, z1 := src.Rand(), src.Rand()
		require.NoError(f.Absorb([]float64{z0 + 1, z0 + z1 - 1}))
	}
	assert.EqualValues(n, f.Count())

	mu, sigma := f.Value()
	assert.InDelta(1.0, mu[0], 0.02)
	assert.InDelta(-1.0, mu[1], 0.02)
	assert.InDelta(1.0, sigma.At(0, 0), 0.05)
	assert.InDelta(1.0, sigma.At(0, 1), 0.05)
	assert.InDelta(2.0, sigma.At(1, 1), 0.05)
}
