package bootstrap

import (
	"context"
	"log/slog"

	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(func(*cron.Cron) {}),
)

// NewScheduler evicts abandoned checkout sessions on cfg.Checkout.SweepSchedule.
func NewScheduler(lc fx.Lifecycle, cfg config.Config, sessions commands.CheckoutCommands, logger *slog.Logger) (*cron.Cron, error) {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	ttl := cfg.Checkout.IdleTTL()
	if _, err := c.AddFunc(cfg.Checkout.SweepSchedule, func() {
		if n := sessions.SweepIdle(ttl); n > 0 {
			logger.Info("swept idle checkout sessions", "count", n, "ttl", ttl)
		}
	}); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("scheduled idle session sweep", "schedule", cfg.Checkout.SweepSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return c, nil
}
