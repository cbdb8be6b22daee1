package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/match-forecast-poc/internal/forecast-service/repo"
	"github.com/radieske/match-forecast-poc/internal/simulation"
	"github.com/radieske/match-forecast-poc/pkg/contracts/events"
)

// ComputedPublisher publica o evento de simulação concluída
type ComputedPublisher interface {
	PublishForecastComputed(ctx context.Context, e events.ForecastComputed) error
}

// ForecastStore é a visão do repositório usada pelo worker
type ForecastStore interface {
	Insert(ctx context.Context, f *repo.Forecast) (string, error)
}

// Processor consome pedidos de forecast do Kafka, executa a simulação
// Monte Carlo, persiste o resultado e publica o evento de conclusão.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Processor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Store  ForecastStore
	Publ   ComputedPublisher
	DLQ    *kafka.Writer // opcional: mensagens inválidas

	TopScores int

	OnConsumed  func()       // métricas (counter++)
	OnSimulated func()       // métricas
	OnPersist   func()       // métricas
	OnError     func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e processamento das mensagens Kafka
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			p.fail("read")
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var req events.ForecastRequested
		if err := json.Unmarshal(m.Value, &req); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			p.fail("decode")
			p.toDLQ(ctx, m.Value)
			continue
		}

		if err := p.process(ctx, req); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Log.Warn("forecast request failed",
				zap.String("request_id", req.RequestID),
				zap.Error(err),
			)
		}
	}
}

// process executa uma simulação completa a partir de um pedido validado
func (p *Processor) process(ctx context.Context, req events.ForecastRequested) error {
	home := simulation.TeamStats{Possession: req.Home.Possession, AvgShots: req.Home.AvgShots, Efficiency: req.Home.Efficiency}
	away := simulation.TeamStats{Possession: req.Away.Possession, AvgShots: req.Away.AvgShots, Efficiency: req.Away.Efficiency}

	lambdaHome, err := simulation.ComputeExpectedGoals(home)
	if err != nil {
		p.fail("validate")
		return err
	}
	lambdaAway, err := simulation.ComputeExpectedGoals(away)
	if err != nil {
		p.fail("validate")
		return err
	}

	// engine novo por pedido: stream aleatório independente
	engine := simulation.New(nil)
	batch, err := engine.RunMonteCarlo(ctx, lambdaHome, lambdaAway, req.Trials)
	if err != nil {
		p.fail("simulate")
		return err
	}
	analysis, err := simulation.AnalyzeTopK(batch, p.TopScores)
	if err != nil {
		p.fail("simulate")
		return err
	}
	if p.OnSimulated != nil {
		p.OnSimulated()
	}

	f := &repo.Forecast{
		RequestID:  req.RequestID,
		HomeTeam:   req.Home.Name,
		AwayTeam:   req.Away.Name,
		HomeStats:  home,
		AwayStats:  away,
		LambdaHome: lambdaHome,
		LambdaAway: lambdaAway,
		Analysis:   *analysis,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := p.Store.Insert(ctx, f)
	if err != nil {
		p.fail("db_insert")
		return err
	}
	if p.OnPersist != nil {
		p.OnPersist()
	}

	// não bloqueia o loop se a publicação do evento falhar
	if err := p.Publ.PublishForecastComputed(ctx, computedEvent(id, req.RequestID, f)); err != nil {
		p.Log.Warn("forecast_computed publish failed", zap.Error(err))
		p.fail("publish")
	}

	return nil
}

func (p *Processor) fail(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}

// toDLQ reenvia mensagens indecifráveis para a dead letter queue, se houver
func (p *Processor) toDLQ(ctx context.Context, payload []byte) {
	if p.DLQ == nil {
		return
	}
	if err := p.DLQ.WriteMessages(ctx, kafka.Message{Value: payload}); err != nil {
		p.Log.Warn("dlq write failed", zap.Error(err))
	}
}

// computedEvent converte um forecast persistido no evento de contrato
func computedEvent(forecastID, requestID string, f *repo.Forecast) events.ForecastComputed {
	top := make([]events.ScorelineFreq, 0, len(f.Analysis.TopScores))
	for _, sc := range f.Analysis.TopScores {
		top = append(top, events.ScorelineFreq{HomeGoals: sc.HomeGoals, AwayGoals: sc.AwayGoals, Count: sc.Count, Pct: sc.Pct})
	}

	return events.ForecastComputed{
		ForecastID:  forecastID,
		RequestID:   requestID,
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		LambdaHome:  f.LambdaHome,
		LambdaAway:  f.LambdaAway,
		TotalTrials: f.Analysis.TotalTrials,
		HomeWins:    f.Analysis.HomeWins,
		AwayWins:    f.Analysis.AwayWins,
		Draws:       f.Analysis.Draws,
		HomeWinPct:  f.Analysis.HomeWinPct,
		AwayWinPct:  f.Analysis.AwayWinPct,
		DrawPct:     f.Analysis.DrawPct,
		TopScores:   top,
		Forecast:    string(f.Analysis.Forecast),
	}
}
