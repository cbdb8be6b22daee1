package simulation

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateClassification(t *testing.T) {
	e := New(rand.New(rand.NewSource(11)))
	for i := 0; i < 5000; i++ {
		outcome := e.Simulate(1.4, 1.1)

		assert.GreaterOrEqual(t, outcome.HomeGoals, 0)
		assert.GreaterOrEqual(t, outcome.AwayGoals, 0)

		switch {
		case outcome.HomeGoals > outcome.AwayGoals:
			assert.Equal(t, HomeWin, outcome.Result)
		case outcome.HomeGoals < outcome.AwayGoals:
			assert.Equal(t, AwayWin, outcome.Result)
		default:
			assert.Equal(t, Draw, outcome.Result)
		}
	}
}

func TestRunMonteCarloBatch(t *testing.T) {
	e := New(rand.New(rand.NewSource(5)))
	batch, err := e.RunMonteCarlo(context.Background(), 1.395, 0.87, 10_000)
	require.NoError(t, err)
	require.Len(t, batch, 10_000)
}

func TestRunMonteCarloSingleTrialMinLambda(t *testing.T) {
	e := New(rand.New(rand.NewSource(9)))
	batch, err := e.RunMonteCarlo(context.Background(), 0.1, 0.1, 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.GreaterOrEqual(t, batch[0].HomeGoals, 0)
	assert.GreaterOrEqual(t, batch[0].AwayGoals, 0)
}

func TestRunMonteCarloInvalidTrials(t *testing.T) {
	e := New(nil)
	for _, trials := range []int{0, -1, -100} {
		_, err := e.RunMonteCarlo(context.Background(), 1.0, 1.0, trials)
		assert.ErrorIs(t, err, ErrInvalidTrialCount)
	}
}

func TestRunMonteCarloCancelled(t *testing.T) {
	e := New(rand.New(rand.NewSource(2)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// contexto já cancelado: nenhum lote parcial é retornado
	batch, err := e.RunMonteCarlo(ctx, 1.0, 1.0, 1_000_000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, batch)
}

func TestRunMonteCarloDeterministicSeed(t *testing.T) {
	run := func() ([]MatchOutcome, *Analysis) {
		e := New(rand.New(rand.NewSource(1234)))
		batch, err := e.RunMonteCarlo(context.Background(), 1.395, 0.87, 5000)
		require.NoError(t, err)
		a, err := Analyze(batch)
		require.NoError(t, err)
		return batch, a
	}

	batch1, a1 := run()
	batch2, a2 := run()

	assert.Equal(t, batch1, batch2)
	assert.Equal(t, a1, a2)
}

func TestForecastPipeline(t *testing.T) {
	e := New(rand.New(rand.NewSource(77)))

	home := TeamStats{Possession: 55, AvgShots: 12, Efficiency: 15}
	away := TeamStats{Possession: 45, AvgShots: 10, Efficiency: 12}

	a, err := e.Forecast(context.Background(), home, away, 20_000)
	require.NoError(t, err)

	assert.Equal(t, 20_000, a.TotalTrials)
	assert.Equal(t, a.TotalTrials, a.HomeWins+a.AwayWins+a.Draws)
	// λ_home=1.395 > λ_away=0.87: mandante deve vencer mais vezes
	assert.Greater(t, a.HomeWins, a.AwayWins)
}

func TestForecastInvalidStats(t *testing.T) {
	e := New(nil)

	_, err := e.Forecast(context.Background(), TeamStats{Possession: 120, AvgShots: 10, Efficiency: 10},
		TeamStats{Possession: 45, AvgShots: 10, Efficiency: 12}, 100)
	assert.ErrorIs(t, err, ErrInvalidStatistic)

	_, err = e.Forecast(context.Background(), TeamStats{Possession: 50, AvgShots: 10, Efficiency: 10},
		TeamStats{Possession: 45, AvgShots: -3, Efficiency: 12}, 100)
	assert.ErrorIs(t, err, ErrInvalidStatistic)
}
