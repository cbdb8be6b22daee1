package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/match-forecast-poc/pkg/contracts/events"
)

// KafkaPublisher publica os eventos do pipeline de forecasts.
// Requested alimenta o forecast-worker; Computed notifica consumidores
// downstream de simulações concluídas.
type KafkaPublisher struct {
	Requested *kafka.Writer
	Computed  *kafka.Writer
}

func NewKafkaPublisher(requested, computed *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Requested: requested, Computed: computed}
}

func (p *KafkaPublisher) PublishForecastRequested(ctx context.Context, e events.ForecastRequested) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.Requested.WriteMessages(ctx, kafka.Message{Key: []byte(e.RequestID), Value: b})
}

func (p *KafkaPublisher) PublishForecastComputed(ctx context.Context, e events.ForecastComputed) error {
	e.Ts = time.Now().UTC()
	b, _ := json.Marshal(e)
	return p.Computed.WriteMessages(ctx, kafka.Message{Key: []byte(e.ForecastID), Value: b})
}
