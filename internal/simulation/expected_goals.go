package simulation

import "fmt"

// MinExpectedGoals é o piso do λ: evita uma Poisson degenerada com média zero.
const MinExpectedGoals = 0.1

// ComputeExpectedGoals converte as estatísticas de um time no parâmetro de
// gols esperados (λ da Poisson).
//
// A posse modula a criação de oportunidades mas não domina o volume de
// finalizações: um time com 0% de posse ainda mantém peso 0.5 sobre os chutes.
func ComputeExpectedGoals(stats TeamStats) (float64, error) {
	if err := ValidateStats(stats); err != nil {
		return 0, err
	}

	possessionFactor := stats.Possession / 100
	efficiencyFactor := stats.Efficiency / 100

	lambda := stats.AvgShots * efficiencyFactor * (0.5 + 0.5*possessionFactor)

	if lambda < MinExpectedGoals {
		return MinExpectedGoals, nil
	}
	return lambda, nil
}

// ValidateStats checa os domínios documentados de cada estatística.
// Falha antes de qualquer simulação começar; nada é clampado aqui.
func ValidateStats(stats TeamStats) error {
	if stats.Possession < 0 || stats.Possession > 100 {
		return fmt.Errorf("%w: possession %.2f out of [0,100]", ErrInvalidStatistic, stats.Possession)
	}
	if stats.AvgShots < 0 {
		return fmt.Errorf("%w: avg_shots %.2f negative", ErrInvalidStatistic, stats.AvgShots)
	}
	if stats.Efficiency < 0 || stats.Efficiency > 100 {
		return fmt.Errorf("%w: efficiency %.2f out of [0,100]", ErrInvalidStatistic, stats.Efficiency)
	}
	return nil
}
