package events

import "time"

// ScorelineFreq é uma entrada do ranking de placares no contrato
type ScorelineFreq struct {
	HomeGoals int     `json:"home_goals"`
	AwayGoals int     `json:"away_goals"`
	Count     int     `json:"count"`
	Pct       float64 `json:"pct"`
}

// Evento emitido após uma simulação concluída (síncrona ou via worker)
type ForecastComputed struct {
	ForecastID string  `json:"forecast_id"`
	RequestID  string  `json:"request_id,omitempty"` // presente no fluxo assíncrono
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	LambdaHome float64 `json:"lambda_home"`
	LambdaAway float64 `json:"lambda_away"`

	TotalTrials int     `json:"total_trials"`
	HomeWins    int     `json:"home_wins"`
	AwayWins    int     `json:"away_wins"`
	Draws       int     `json:"draws"`
	HomeWinPct  float64 `json:"home_win_pct"`
	AwayWinPct  float64 `json:"away_win_pct"`
	DrawPct     float64 `json:"draw_pct"`

	TopScores []ScorelineFreq `json:"top_scores"`
	Forecast  string          `json:"forecast"` // "HOME_WIN" | "AWAY_WIN" | "DRAW"

	Ts time.Time `json:"ts"`
}
