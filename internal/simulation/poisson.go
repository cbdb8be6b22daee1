package simulation

import "math"

// Poisson gera uma amostra inteira não negativa de uma Poisson(lambda)
// usando a fonte aleatória do próprio engine.
//
// Para lambda pequeno usa amostragem por transformada inversa (Knuth);
// acima de 12 a aproximação normal é estatisticamente indistinguível e
// evita o custo linear em lambda.
func (e *Engine) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	if lambda < 12 {
		limit := math.Exp(-lambda)
		k := 0
		p := 1.0
		for p > limit {
			k++
			p *= e.rng.Float64()
		}
		return k - 1
	}

	return int(math.Max(0, e.rng.NormFloat64()*math.Sqrt(lambda)+lambda+0.5))
}

// PoissonProb calcula P(X = k) para X ~ Poisson(lambda), em espaço log
// para estabilidade numérica.
func PoissonProb(lambda float64, k int) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	logProb := float64(k)*math.Log(lambda) - lambda - logFactorial(k)
	return math.Exp(logProb)
}

func logFactorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	sum := 0.0
	for i := 2; i <= n; i++ {
		sum += math.Log(float64(i))
	}
	return sum
}
