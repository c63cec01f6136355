package bootstrap

import (
	"time"

	"guarupark-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCheckoutLocation,
	),
)

// NewCheckoutLocation is the zone stay dates and due dates are read in.
func NewCheckoutLocation(cfg config.Config) *time.Location {
	return cfg.Checkout.Location()
}
