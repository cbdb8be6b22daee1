package simulation

import "sort"

// DefaultTopScores é o tamanho padrão do ranking de placares.
const DefaultTopScores = 5

type scoreKey struct {
	home, away int
}

// Analyze agrega um lote completo com o top-K padrão de placares.
// Função pura do lote: chamadas repetidas produzem resultados idênticos.
func Analyze(batch []MatchOutcome) (*Analysis, error) {
	return AnalyzeTopK(batch, DefaultTopScores)
}

// AnalyzeTopK agrega um lote completo de simulações: contagens e
// percentuais por categoria, ranking dos topK placares mais frequentes,
// prognóstico final e placar mais provável.
//
// Empates de frequência no ranking preservam a ordem de primeira
// ocorrência no lote (sort estável, sem critério numérico secundário).
// Empate de percentual máximo entre categorias resolve por prioridade
// fixa HOME_WIN > DRAW > AWAY_WIN.
func AnalyzeTopK(batch []MatchOutcome, topK int) (*Analysis, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}
	if topK < 1 {
		topK = DefaultTopScores
	}

	total := len(batch)
	a := &Analysis{TotalTrials: total}

	counts := make(map[scoreKey]int)
	order := make([]scoreKey, 0)

	for _, outcome := range batch {
		switch outcome.Result {
		case HomeWin:
			a.HomeWins++
		case AwayWin:
			a.AwayWins++
		default:
			a.Draws++
		}

		key := scoreKey{outcome.HomeGoals, outcome.AwayGoals}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	a.HomeWinPct = float64(a.HomeWins) / float64(total) * 100
	a.AwayWinPct = float64(a.AwayWins) / float64(total) * 100
	a.DrawPct = float64(a.Draws) / float64(total) * 100

	// ranking estável sobre a ordem de primeira ocorrência
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if topK > len(order) {
		topK = len(order)
	}
	a.TopScores = make([]ScoreCount, 0, topK)
	for _, key := range order[:topK] {
		a.TopScores = append(a.TopScores, ScoreCount{
			HomeGoals: key.home,
			AwayGoals: key.away,
			Count:     counts[key],
			Pct:       float64(counts[key]) / float64(total) * 100,
		})
	}

	a.Forecast = forecastLabel(a)
	a.MostLikelyScore = a.TopScores[0]

	return a, nil
}

// forecastLabel escolhe a categoria de percentual estritamente máximo;
// empates resolvem na ordem de prioridade HOME_WIN, DRAW, AWAY_WIN.
func forecastLabel(a *Analysis) Result {
	switch {
	case a.HomeWins >= a.Draws && a.HomeWins >= a.AwayWins:
		return HomeWin
	case a.Draws >= a.AwayWins:
		return Draw
	default:
		return AwayWin
	}
}
