package bootstrap

import (
	"log/slog"

	"guarupark-checkout/internal/infra/gateway"
	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *gateway.PayevoClient {
	return gateway.NewPayevoClient(cfg.Gateway, logger)
}
