package components

import (
	"context"
	"log/slog"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/internal/pkg/clock"
	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/usecase/commands"
	"guarupark-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricer,
	NewFormValidator,
	NewPayloadBuilder,
	NewOrchestrator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewPaymentCommands,
		commands.NewWebhookCommands,
		NewCheckoutRunner,
		func(r *commands.CheckoutRunner) commands.CheckoutCommands { return r },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

func NewPricer(cfg config.Config) *checkout.Pricer {
	p := cfg.Pricing
	return checkout.NewPricer(checkout.Rates{
		CoveredDailyCents:   p.CoveredDailyCents,
		UncoveredDailyCents: p.UncoveredDailyCents,
		InsuranceDailyCents: p.InsuranceDailyCents,
		CreditFeeBP:         p.CreditFeeBP,
		InterestFree:        p.InterestFree,
		InstallmentStepBP:   p.InstallmentStepBP,
		MaxInstallments:     p.MaxInstallments,
	})
}

func NewFormValidator(cfg config.Config) checkout.FormValidator {
	return checkout.NewFormValidator(cfg.Checkout.RequireSurname, cfg.Pricing.MaxInstallments)
}

func NewPayloadBuilder(cfg config.Config) *checkout.PayloadBuilder {
	return checkout.NewPayloadBuilder(cfg.Checkout.PixKey, cfg.Checkout.BoletoDueDays, checkout.NewReservationIDGenerator())
}

func NewOrchestrator(cfg config.Config, pricer *checkout.Pricer, validator checkout.FormValidator, payloads *checkout.PayloadBuilder) *checkout.Orchestrator {
	return checkout.NewOrchestrator(checkout.OrchestratorConfig{
		Pricer:           pricer,
		Validator:        validator,
		Payloads:         payloads,
		PixExpirySeconds: int(cfg.Checkout.PixExpiry / time.Second),
		NewSessionID:     uuid.NewString,
	})
}

type PaymentParams struct {
	fx.In

	Gateway   commands.PaymentGateway
	Store     commands.ReservationStore
	Events    commands.EventPublisher
	Pricer    *checkout.Pricer
	Validator checkout.FormValidator
	Payloads  *checkout.PayloadBuilder
	Clock     clock.Clock
	Logger    *slog.Logger
}

func NewPaymentCommands(p PaymentParams) commands.PaymentCommands {
	return commands.NewPaymentCommands(commands.PaymentDeps{
		Gateway:   p.Gateway,
		Store:     p.Store,
		Events:    p.Events,
		Pricer:    p.Pricer,
		Validator: p.Validator,
		Payloads:  p.Payloads,
		Clock:     p.Clock,
		Logger:    p.Logger,
	})
}

type RunnerParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       config.Config
	Orchestrator *checkout.Orchestrator
	Gateway      commands.PaymentGateway
	Store        commands.ReservationStore
	Events       commands.EventPublisher
	Clock        clock.Clock
	Logger       *slog.Logger
}

func NewCheckoutRunner(p RunnerParams) *commands.CheckoutRunner {
	r := commands.NewCheckoutRunner(commands.RunnerDeps{
		Orchestrator:   p.Orchestrator,
		Gateway:        p.Gateway,
		Store:          p.Store,
		Events:         p.Events,
		Clock:          p.Clock,
		Logger:         p.Logger,
		GatewayTimeout: p.Config.Checkout.GatewayCallLimit,
	})
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			r.Close()
			return nil
		},
	})
	return r
}
