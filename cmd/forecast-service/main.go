package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	fcache "github.com/radieske/match-forecast-poc/internal/forecast-service/cache"
	fhttp "github.com/radieske/match-forecast-poc/internal/forecast-service/http"
	kpub "github.com/radieske/match-forecast-poc/internal/forecast-service/producer"
	"github.com/radieske/match-forecast-poc/internal/forecast-service/repo"
	sharedcache "github.com/radieske/match-forecast-poc/internal/shared/cache"
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
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()
	log.Info("postgres connected")

	// Redis
	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	// Kafka writers: pedidos assíncronos e eventos de conclusão
	requestedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicForecastRequested)
	defer requestedWriter.Close()
	computedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicForecastComputed)
	defer computedWriter.Close()
	log.Info("kafka writers ready",
		zap.String("requested", cfg.TopicForecastRequested),
		zap.String("computed", cfg.TopicForecastComputed),
	)

	// Métricas Prometheus do serviço
	computed := prometheus.NewCounter(prometheus.CounterOpts{Name: "forecast_computed_total", Help: "simulações síncronas concluídas"})
	queued := prometheus.NewCounter(prometheus.CounterOpts{Name: "forecast_queued_total", Help: "pedidos enfileirados no Kafka"})
	prometheus.MustRegister(computed, queued)

	// deps
	store := repo.NewPostgres(pg)
	cache := fcache.New(redisClient)
	publ := kpub.NewKafkaPublisher(requestedWriter, computedWriter)

	api := &fhttp.Server{
		Log:   log,
		Store: store,
		Cache: cache,
		Publ:  publ,

		DefaultTrials: cfg.DefaultTrials,
		MaxTrials:     cfg.MaxTrials,
		TopScores:     cfg.TopScores,
		CacheTTL:      cfg.CacheTTL,

		OnComputed: func() { computed.Inc() },
		OnQueued:   func() { queued.Inc() },
	}

	// metrics/health em porta dedicada
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})
	defer metricsSrv.Close()
	log.Info("metrics/health server starting", zap.String("addr", metricsSrv.Addr))

	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	log.Info("forecast-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
