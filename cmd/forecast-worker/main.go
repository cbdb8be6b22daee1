package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	kpub "github.com/radieske/match-forecast-poc/internal/forecast-service/producer"
	"github.com/radieske/match-forecast-poc/internal/forecast-service/repo"
	"github.com/radieske/match-forecast-poc/internal/forecast-worker/consumer"
	"github.com/radieske/match-forecast-poc/internal/shared/config"
	"github.com/radieske/match-forecast-poc/internal/shared/db"
	"github.com/radieske/match-forecast-poc/internal/shared/kafka"
	"github.com/radieske/match-forecast-poc/internal/shared/logger"
	"github.com/radieske/match-forecast-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres para persistência dos forecasts computados
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	// Kafka consumer: pedidos de forecast (consumer group forecast-worker)
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicForecastRequested, "forecast-worker")
	defer reader.Close()

	// Kafka producers: eventos de conclusão e DLQ de mensagens inválidas
	computedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicForecastComputed)
	defer computedWriter.Close()
	dlqWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicForecastRequestedDLQ)
	defer dlqWriter.Close()

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "forecast_worker_messages_consumed_total", Help: "mensagens consumidas"})
	simulated := prometheus.NewCounter(prometheus.CounterOpts{Name: "forecast_worker_simulations_total", Help: "simulações concluídas"})
	persisted := prometheus.NewCounter(prometheus.CounterOpts{Name: "forecast_worker_db_writes_total", Help: "escritas no banco"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "forecast_worker_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, simulated, persisted, errorsBy)

	proc := &consumer.Processor{
		Log:    log,
		Reader: reader,
		Store:  repo.NewPostgres(pg),
		Publ:   kpub.NewKafkaPublisher(nil, computedWriter),
		DLQ:    dlqWriter,

		TopScores: cfg.TopScores,

		OnConsumed:  func() { consumed.Inc() },
		OnSimulated: func() { simulated.Inc() },
		OnPersist:   func() { persisted.Inc() },
		OnError:     func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Servidor HTTP para métricas e health check
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})
	defer metricsSrv.Close()
	log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("forecast-worker started")
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("forecast-worker stopped")
}
