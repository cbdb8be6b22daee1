package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExpectedGoals(t *testing.T) {
	lambda, err := ComputeExpectedGoals(TeamStats{Possession: 55, AvgShots: 12, Efficiency: 15})
	require.NoError(t, err)
	assert.InDelta(t, 1.395, lambda, 1e-9)
}

func TestComputeExpectedGoalsFloor(t *testing.T) {
	// valor bruto 0 deve ser elevado ao piso 0.1
	lambda, err := ComputeExpectedGoals(TeamStats{Possession: 0, AvgShots: 10, Efficiency: 0})
	require.NoError(t, err)
	assert.Equal(t, MinExpectedGoals, lambda)

	lambda, err = ComputeExpectedGoals(TeamStats{Possession: 50, AvgShots: 0, Efficiency: 50})
	require.NoError(t, err)
	assert.Equal(t, MinExpectedGoals, lambda)
}

func TestComputeExpectedGoalsAlwaysAboveFloor(t *testing.T) {
	cases := []TeamStats{
		{Possession: 0, AvgShots: 0, Efficiency: 0},
		{Possession: 100, AvgShots: 0.01, Efficiency: 0.01},
		{Possession: 100, AvgShots: 30, Efficiency: 100},
		{Possession: 33.3, AvgShots: 7.5, Efficiency: 9.1},
	}
	for _, stats := range cases {
		lambda, err := ComputeExpectedGoals(stats)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, lambda, MinExpectedGoals)
	}
}

func TestComputeExpectedGoalsMaxStats(t *testing.T) {
	// 100% de posse: fator (0.5 + 0.5*1) = 1, λ = chutes * efetividade
	lambda, err := ComputeExpectedGoals(TeamStats{Possession: 100, AvgShots: 20, Efficiency: 25})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, lambda, 1e-9)
}

func TestValidateStats(t *testing.T) {
	cases := []struct {
		name  string
		stats TeamStats
	}{
		{"negative possession", TeamStats{Possession: -1, AvgShots: 10, Efficiency: 10}},
		{"possession above 100", TeamStats{Possession: 101, AvgShots: 10, Efficiency: 10}},
		{"negative shots", TeamStats{Possession: 50, AvgShots: -0.5, Efficiency: 10}},
		{"negative efficiency", TeamStats{Possession: 50, AvgShots: 10, Efficiency: -10}},
		{"efficiency above 100", TeamStats{Possession: 50, AvgShots: 10, Efficiency: 100.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeExpectedGoals(tc.stats)
			assert.ErrorIs(t, err, ErrInvalidStatistic)
		})
	}

	assert.NoError(t, ValidateStats(TeamStats{Possession: 0, AvgShots: 0, Efficiency: 0}))
	assert.NoError(t, ValidateStats(TeamStats{Possession: 100, AvgShots: 50, Efficiency: 100}))
}
