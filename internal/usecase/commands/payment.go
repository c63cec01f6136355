package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/internal/pkg/clock"
	"guarupark-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingRequiredFields = errs.New("missing required fields")
	ErrInvalidAmount         = errs.New("total amount must be positive")
)

// PayRequest is a one-shot payment: the whole form and stay arrive together.
type PayRequest struct {
	Method      checkout.PaymentMethod
	Form        checkout.CustomerForm
	Reservation checkout.ReservationData
	TotalAmount float64
}

type PayResult struct {
	TransactionID string
	ReservationID string
	AmountCents   int64
	Response      checkout.GatewayResponse
}

type PaymentCommands interface {
	Pay(ctx context.Context, req PayRequest) (*PayResult, error)
}

type PaymentDeps struct {
	Gateway   PaymentGateway
	Store     ReservationStore
	Events    EventPublisher
	Pricer    *checkout.Pricer
	Validator checkout.FormValidator
	Payloads  *checkout.PayloadBuilder
	Clock     clock.Clock
	Logger    *slog.Logger
}

type paymentCommandsImpl struct {
	PaymentDeps
}

func NewPaymentCommands(deps PaymentDeps) PaymentCommands {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &paymentCommandsImpl{PaymentDeps: deps}
}

func (uc *paymentCommandsImpl) Pay(ctx context.Context, req PayRequest) (*PayResult, error) {
	if !req.Method.IsValid() {
		return nil, checkout.ErrUnknownMethod
	}
	if req.Form.Value(checkout.FieldEmail) == "" || req.Form.Value(checkout.FieldFullName) == "" || req.Form.Value(checkout.FieldCPF) == "" {
		return nil, ErrMissingRequiredFields
	}
	if err := uc.Validator.Validate(req.Form, req.Method).Err(); err != nil {
		return nil, err
	}

	amount, err := uc.amount(req)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	payload, err := uc.Payloads.Build(req.Method, req.Form, req.Reservation, amount, now)
	if err != nil {
		return nil, err
	}

	resp, err := uc.Gateway.CreateTransaction(ctx, payload)
	if err != nil {
		return nil, err
	}

	txID := resp.TransactionID
	if txID == "" {
		txID = NewTransactionID(now.UnixMilli())
		resp.TransactionID = txID
	}
	result := &PayResult{
		TransactionID: txID,
		ReservationID: payload.Metadata.ReservationID,
		AmountCents:   payload.Amount,
		Response:      resp,
	}

	rec := recordFrom(req, payload, txID, now)
	if _, err := uc.Store.Create(ctx, rec); err != nil {
		// the charge already went through; the webhook can still reconcile
		uc.Logger.ErrorContext(ctx, "failed to persist paid reservation",
			"reservation_id", rec.Code, "transaction_id", txID, "error", err)
	}

	evt := ReservationEvent{
		Type:          createdEventType(rec.Status),
		ReservationID: rec.Code,
		TransactionID: txID,
		Status:        rec.Status,
		PaymentMethod: string(req.Method),
		AmountCents:   payload.Amount,
		OccurredAt:    now,
	}
	if err := uc.Events.Publish(ctx, evt); err != nil {
		uc.Logger.WarnContext(ctx, "failed to publish reservation event", "type", evt.Type, "error", err)
	}
	return result, nil
}

// amount re-prices a well-formed stay and falls back to the client total otherwise.
func (uc *paymentCommandsImpl) amount(req PayRequest) (checkout.Money, error) {
	if req.Reservation.IsOrdered() {
		q, err := uc.Pricer.Quote(req.Reservation, req.Method)
		if err != nil {
			return checkout.Money{}, err
		}
		n, _ := strconv.Atoi(req.Form.Value(checkout.FieldInstallments))
		return q.Charge(req.Method, n), nil
	}
	m := checkout.MoneyFromReais(req.TotalAmount)
	if m.IsZero() {
		return checkout.Money{}, ErrInvalidAmount
	}
	return m, nil
}

func recordFrom(req PayRequest, payload checkout.PaymentRequest, txID string, now time.Time) ReservationRecord {
	res := req.Reservation
	return ReservationRecord{
		Code:          payload.Metadata.ReservationID,
		TransactionID: txID,
		Status:        StatusConfirmed,
		PaymentMethod: req.Method,
		CustomerName:  payload.Customer.Name,
		CustomerEmail: payload.Customer.Email,
		CustomerPhone: payload.Customer.Phone,
		Document:      payload.Customer.Document,
		VehiclePlate:  payload.Metadata.VehiclePlate,
		VehicleType:   payload.Metadata.VehicleType,
		EntryDate:     payload.Metadata.EntryDate,
		EntryTime:     res.EntryTime(),
		ExitDate:      payload.Metadata.ExitDate,
		ExitTime:      res.ExitTime(),
		ParkingType:   res.ParkingType(),
		Insurance:     res.Insurance(),
		AmountCents:   payload.Amount,
		Installments:  payload.Installments,
		CreatedAt:     now,
	}
}

// NewTransactionID builds the fallback id used when the gateway omits one.
func NewTransactionID(ms int64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "TXN" + strconv.FormatInt(ms, 10) + strings.ToUpper(suffix)
}
