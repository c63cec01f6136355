package components

import (
	"guarupark-checkout/internal/handler"
	"guarupark-checkout/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewReservationHandler,
		api.NewCheckoutHandler,
		func(p *api.PaymentHandler, w *api.WebhookHandler, r *api.ReservationHandler, c *api.CheckoutHandler) handler.Handlers {
			return handler.Handlers{Payment: p, Webhook: w, Reservation: r, Checkout: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
