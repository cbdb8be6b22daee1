package dto

import (
	"time"

	"github.com/radieske/match-forecast-poc/internal/simulation"
)

// ForecastResponse é a resposta do fluxo síncrono e do GET por ID.
type ForecastResponse struct {
	ForecastID string    `json:"forecast_id"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	LambdaHome float64   `json:"lambda_home"`
	LambdaAway float64   `json:"lambda_away"`
	CreatedAt  time.Time `json:"created_at"`

	Analysis simulation.Analysis `json:"analysis"`
}

// AsyncForecastResponse é a resposta 202 do fluxo assíncrono.
type AsyncForecastResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"` // QUEUED
}
