package dto

// TeamStatsInput são as estatísticas informadas pelo cliente para um time.
// Percentuais em 0-100; chutes por partida.
type TeamStatsInput struct {
	Possession float64 `json:"possession"`
	AvgShots   float64 `json:"avg_shots"`
	Efficiency float64 `json:"efficiency"`
}

// ForecastRequest é o corpo do POST /v1/forecasts.
// Estatísticas omitidas caem nos defaults documentados:
// mandante {55, 12, 15}, visitante {45, 10, 12}; trials default 100.
type ForecastRequest struct {
	HomeTeam string          `json:"home_team"`
	AwayTeam string          `json:"away_team"`
	Home     *TeamStatsInput `json:"home_stats,omitempty"`
	Away     *TeamStatsInput `json:"away_stats,omitempty"`
	Trials   int             `json:"trials,omitempty"`
}
