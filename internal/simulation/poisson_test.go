package simulation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoissonNonNegative(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	for _, lambda := range []float64{0.1, 0.5, 1.395, 4, 15, 30} {
		for i := 0; i < 1000; i++ {
			assert.GreaterOrEqual(t, e.Poisson(lambda), 0)
		}
	}
}

func TestPoissonEmpiricalMean(t *testing.T) {
	// lei dos grandes números: média amostral converge para λ com erro ~ σ/√n
	e := New(rand.New(rand.NewSource(42)))
	const n = 100_000

	for _, lambda := range []float64{0.1, 1.0, 2.5, 6.0} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += e.Poisson(lambda)
		}
		mean := float64(sum) / n
		tolerance := 5 * math.Sqrt(lambda/n)
		assert.InDelta(t, lambda, mean, tolerance, "lambda=%v mean=%v", lambda, mean)
	}
}

func TestPoissonEmpiricalVariance(t *testing.T) {
	// para a Poisson, variância = média = λ
	e := New(rand.New(rand.NewSource(7)))
	const n = 100_000
	const lambda = 2.0

	samples := make([]int, n)
	sum := 0
	for i := range samples {
		samples[i] = e.Poisson(lambda)
		sum += samples[i]
	}
	mean := float64(sum) / n

	varSum := 0.0
	for _, s := range samples {
		d := float64(s) - mean
		varSum += d * d
	}
	variance := varSum / n

	assert.InDelta(t, lambda, variance, 0.1)
}

func TestPoissonZeroLambda(t *testing.T) {
	e := New(rand.New(rand.NewSource(3)))
	assert.Equal(t, 0, e.Poisson(0))
	assert.Equal(t, 0, e.Poisson(-1))
}

func TestPoissonProb(t *testing.T) {
	// P(0) = e^{-λ}
	assert.InDelta(t, math.Exp(-1.5), PoissonProb(1.5, 0), 1e-12)
	// P(1) = λ e^{-λ}
	assert.InDelta(t, 1.5*math.Exp(-1.5), PoissonProb(1.5, 1), 1e-12)

	assert.Zero(t, PoissonProb(1.5, -1))
	assert.Equal(t, 1.0, PoissonProb(0, 0))
	assert.Zero(t, PoissonProb(0, 2))

	// a massa total soma 1
	total := 0.0
	for k := 0; k < 50; k++ {
		total += PoissonProb(3.0, k)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
