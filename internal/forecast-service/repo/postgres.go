package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/match-forecast-poc/internal/simulation"
)

// Postgres implementa a persistência de forecasts em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de forecasts
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Insert grava um forecast concluído e retorna o ID gerado.
// O ranking de placares vai como JSONB na coluna top_scores.
func (p *Postgres) Insert(ctx context.Context, f *Forecast) (string, error) {
	id := uuid.NewString()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	topScores, err := json.Marshal(f.Analysis.TopScores)
	if err != nil {
		return "", err
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO forecasts
		  (id, request_id, home_team, away_team,
		   home_possession, home_avg_shots, home_efficiency,
		   away_possession, away_avg_shots, away_efficiency,
		   lambda_home, lambda_away,
		   total_trials, home_wins, away_wins, draws,
		   home_win_pct, away_win_pct, draw_pct,
		   forecast, top_scores, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		id, nullIfEmpty(f.RequestID), f.HomeTeam, f.AwayTeam,
		f.HomeStats.Possession, f.HomeStats.AvgShots, f.HomeStats.Efficiency,
		f.AwayStats.Possession, f.AwayStats.AvgShots, f.AwayStats.Efficiency,
		f.LambdaHome, f.LambdaAway,
		f.Analysis.TotalTrials, f.Analysis.HomeWins, f.Analysis.AwayWins, f.Analysis.Draws,
		f.Analysis.HomeWinPct, f.Analysis.AwayWinPct, f.Analysis.DrawPct,
		string(f.Analysis.Forecast), topScores, f.CreatedAt,
	)
	if err != nil {
		return "", err
	}

	f.ID = id
	return id, nil
}

// GetByID carrega um forecast persistido; sql.ErrNoRows quando não existe
func (p *Postgres) GetByID(ctx context.Context, id string) (*Forecast, error) {
	f := &Forecast{}
	var requestID sql.NullString
	var forecast string
	var topScores []byte

	err := p.db.QueryRowContext(ctx, `
		SELECT id, request_id, home_team, away_team,
		       home_possession, home_avg_shots, home_efficiency,
		       away_possession, away_avg_shots, away_efficiency,
		       lambda_home, lambda_away,
		       total_trials, home_wins, away_wins, draws,
		       home_win_pct, away_win_pct, draw_pct,
		       forecast, top_scores, created_at
		FROM forecasts WHERE id=$1`, id,
	).Scan(
		&f.ID, &requestID, &f.HomeTeam, &f.AwayTeam,
		&f.HomeStats.Possession, &f.HomeStats.AvgShots, &f.HomeStats.Efficiency,
		&f.AwayStats.Possession, &f.AwayStats.AvgShots, &f.AwayStats.Efficiency,
		&f.LambdaHome, &f.LambdaAway,
		&f.Analysis.TotalTrials, &f.Analysis.HomeWins, &f.Analysis.AwayWins, &f.Analysis.Draws,
		&f.Analysis.HomeWinPct, &f.Analysis.AwayWinPct, &f.Analysis.DrawPct,
		&forecast, &topScores, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.RequestID = requestID.String
	f.Analysis.Forecast = simulation.Result(forecast)
	if err := json.Unmarshal(topScores, &f.Analysis.TopScores); err != nil {
		return nil, err
	}
	if len(f.Analysis.TopScores) > 0 {
		f.Analysis.MostLikelyScore = f.Analysis.TopScores[0]
	}

	return f, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
