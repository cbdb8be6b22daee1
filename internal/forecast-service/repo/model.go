package repo

import (
	"time"

	"github.com/radieske/match-forecast-poc/internal/simulation"
)

// Forecast é o modelo persistido no Postgres (tabela forecasts):
// entradas, λs derivados e a análise agregada da simulação.
type Forecast struct {
	ID        string
	RequestID string // presente apenas no fluxo assíncrono

	HomeTeam string
	AwayTeam string

	HomeStats simulation.TeamStats
	AwayStats simulation.TeamStats

	LambdaHome float64
	LambdaAway float64

	Analysis simulation.Analysis

	CreatedAt time.Time
}
