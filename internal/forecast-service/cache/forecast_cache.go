package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache guarda respostas de forecast já computadas no Redis
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func keyForecast(id string) string { return "forecast:" + id }

// Get tenta carregar um forecast do cache; false quando não há entrada
func (c *Cache) Get(ctx context.Context, id string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyForecast(id)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

// Set grava um forecast no cache com o TTL informado
func (c *Cache) Set(ctx context.Context, id string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, keyForecast(id), b, ttl).Err()
}
