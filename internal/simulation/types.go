package simulation

import "errors"

// Erros de validação, checados antes de iniciar qualquer simulação.
var (
	ErrInvalidStatistic  = errors.New("invalid team statistic")
	ErrInvalidTrialCount = errors.New("invalid trial count")
	ErrEmptyBatch        = errors.New("empty batch")
)

// TeamStats agrupa as estatísticas de entrada de um time.
// Possession e Efficiency em percentual (0-100), AvgShots por partida.
type TeamStats struct {
	Possession float64 `json:"possession"`
	AvgShots   float64 `json:"avg_shots"`
	Efficiency float64 `json:"efficiency"`
}

// Result classifica o desfecho de uma partida simulada.
type Result string

const (
	HomeWin Result = "HOME_WIN"
	AwayWin Result = "AWAY_WIN"
	Draw    Result = "DRAW"
)

// MatchOutcome é o resultado de uma única simulação de partida.
type MatchOutcome struct {
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
	Result    Result `json:"result"`
}

// ScoreCount é uma entrada do ranking de placares mais frequentes.
type ScoreCount struct {
	HomeGoals int     `json:"home_goals"`
	AwayGoals int     `json:"away_goals"`
	Count     int     `json:"count"`
	Pct       float64 `json:"pct"`
}

// Analysis agrega um lote completo de simulações: contagens e percentuais
// por categoria, top-K de placares, prognóstico final e placar mais provável.
type Analysis struct {
	TotalTrials int `json:"total_trials"`

	HomeWins int `json:"home_wins"`
	AwayWins int `json:"away_wins"`
	Draws    int `json:"draws"`

	HomeWinPct float64 `json:"home_win_pct"`
	AwayWinPct float64 `json:"away_win_pct"`
	DrawPct    float64 `json:"draw_pct"`

	TopScores []ScoreCount `json:"top_scores"`

	Forecast        Result     `json:"forecast"`
	MostLikelyScore ScoreCount `json:"most_likely_score"`
}
