package cache

import (
	"context"
	"time"

	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const dedupPrefix = "guarupark:"

// RedisDeduper remembers delivery keys with SETNX for a fixed TTL.
type RedisDeduper struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewRedisDeduper(client redis.Cmdable, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

func (d *RedisDeduper) FirstDelivery(ctx context.Context, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, dedupPrefix+key, "1", d.ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "redis setnx")
	}
	return ok, nil
}

func (d *RedisDeduper) Forget(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, dedupPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

// NopDeduper treats every delivery as new.
type NopDeduper struct{}

func (NopDeduper) FirstDelivery(context.Context, string) (bool, error) {
	return true, nil
}

func (NopDeduper) Forget(context.Context, string) error {
	return nil
}
