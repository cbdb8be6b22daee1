package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// DefaultTrials é o número de simulações quando o chamador não informa um.
const DefaultTrials = 100

// intervalo de iterações entre checagens de cancelamento do contexto
const cancelCheckEvery = 1024

// Engine executa simulações Monte Carlo de partidas. Cada engine é dono
// exclusivo da sua fonte aleatória: não é seguro para uso concorrente —
// execuções paralelas devem usar engines (e streams) independentes.
type Engine struct {
	rng *rand.Rand
}

// New cria um engine com a fonte aleatória informada. Com rng nil a fonte
// é semeada pelo relógio; injete uma fonte semeada para reprodutibilidade
// bit a bit em testes.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Simulate gera uma partida: dois sorteios Poisson independentes (nenhuma
// correlação entre os ataques) e a classificação do resultado.
func (e *Engine) Simulate(lambdaHome, lambdaAway float64) MatchOutcome {
	homeGoals := e.Poisson(lambdaHome)
	awayGoals := e.Poisson(lambdaAway)

	var result Result
	switch {
	case homeGoals > awayGoals:
		result = HomeWin
	case homeGoals < awayGoals:
		result = AwayWin
	default:
		result = Draw
	}

	return MatchOutcome{HomeGoals: homeGoals, AwayGoals: awayGoals, Result: result}
}

// RunMonteCarlo executa trials simulações independentes e retorna o lote
// na ordem de geração. Cancelamento é checado cooperativamente entre
// iterações; um lote parcial nunca é retornado.
func (e *Engine) RunMonteCarlo(ctx context.Context, lambdaHome, lambdaAway float64, trials int) ([]MatchOutcome, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%w: trials=%d, must be >= 1", ErrInvalidTrialCount, trials)
	}

	batch := make([]MatchOutcome, 0, trials)
	for i := 0; i < trials; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		batch = append(batch, e.Simulate(lambdaHome, lambdaAway))
	}
	return batch, nil
}

// Forecast encadeia o pipeline completo: estatísticas → λ → Monte Carlo →
// análise agregada.
func (e *Engine) Forecast(ctx context.Context, home, away TeamStats, trials int) (*Analysis, error) {
	lambdaHome, err := ComputeExpectedGoals(home)
	if err != nil {
		return nil, fmt.Errorf("home stats: %w", err)
	}
	lambdaAway, err := ComputeExpectedGoals(away)
	if err != nil {
		return nil, fmt.Errorf("away stats: %w", err)
	}

	batch, err := e.RunMonteCarlo(ctx, lambdaHome, lambdaAway, trials)
	if err != nil {
		return nil, err
	}
	return Analyze(batch)
}
