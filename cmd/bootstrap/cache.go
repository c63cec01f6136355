package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"guarupark-checkout/internal/infra/cache"
	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewDeliveryDeduper,
	),
)

// NewDeliveryDeduper runs without de-duplication when REDIS_ADDR is unset or unreachable.
func NewDeliveryDeduper(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.DeliveryDeduper {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis not configured; webhook de-duplication disabled")
		return cache.NopDeduper{}
	}

	client := cache.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis ping failed; webhook de-duplication disabled", "addr", cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return cache.NopDeduper{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("redis connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisDeduper(client, cfg.Redis.DedupTTL)
}
