// Package cache guarda agregados de avaliacao em Redis para a listagem de
// freelancers nao recalcular AVG a cada requisicao.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// nilMarker representa "freelancer sem avaliacoes" no cache, distinguindo
// cache miss de media inexistente.
const nilMarker = "none"

// RatingCache e o contrato consumido pelo service de avaliacoes.
type RatingCache interface {
	GetMedia(ctx context.Context, freelancerID uuid.UUID) (media *float64, hit bool, err error)
	SetMedia(ctx context.Context, freelancerID uuid.UUID, media *float64) error
	Invalidate(ctx context.Context, freelancerID uuid.UUID) error
}

type RedisRatingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRatingCache(rdb *redis.Client, ttl time.Duration) *RedisRatingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisRatingCache{rdb: rdb, ttl: ttl}
}

func mediaKey(freelancerID uuid.UUID) string {
	return "avaliacoes:media:" + freelancerID.String()
}

func (c *RedisRatingCache) GetMedia(ctx context.Context, freelancerID uuid.UUID) (*float64, bool, error) {
	val, err := c.rdb.Get(ctx, mediaKey(freelancerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if val == nilMarker {
		return nil, true, nil
	}
	media, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, false, err
	}
	return &media, true, nil
}

func (c *RedisRatingCache) SetMedia(ctx context.Context, freelancerID uuid.UUID, media *float64) error {
	val := nilMarker
	if media != nil {
		val = strconv.FormatFloat(*media, 'f', -1, 64)
	}
	return c.rdb.Set(ctx, mediaKey(freelancerID), val, c.ttl).Err()
}

func (c *RedisRatingCache) Invalidate(ctx context.Context, freelancerID uuid.UUID) error {
	return c.rdb.Del(ctx, mediaKey(freelancerID)).Err()
}
