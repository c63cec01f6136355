package bootstrap

import (
	"context"
	"log/slog"

	"guarupark-checkout/internal/infra/events"
	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	pub, err := events.New(cfg.Events, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("event publisher ready", "driver", cfg.Events.Driver)
	return pub, nil
}
