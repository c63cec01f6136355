package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/internal/pkg/clock"
	"guarupark-checkout/internal/pkg/errs"
)

var ErrSessionNotFound = errs.New("checkout session not found")

// Ticker is the subset of time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type CheckoutCommands interface {
	Start(ctx context.Context, res checkout.ReservationData) (checkout.Session, error)
	Get(ctx context.Context, id string) (checkout.Session, error)
	UpdateFields(ctx context.Context, id string, fields map[checkout.FieldID]string) (checkout.Session, checkout.ValidationResult, error)
	SelectMethod(ctx context.Context, id string, method checkout.PaymentMethod) (checkout.Session, error)
	Submit(ctx context.Context, id string) (checkout.Session, checkout.ValidationResult, error)
	Confirm(ctx context.Context, id string) (checkout.Session, error)
	Cancel(ctx context.Context, id string) (checkout.Session, error)
	Remove(ctx context.Context, id string) error
	SweepIdle(ttl time.Duration) int
}

type RunnerDeps struct {
	Orchestrator   *checkout.Orchestrator
	Gateway        PaymentGateway
	Store          ReservationStore
	Events         EventPublisher
	Clock          clock.Clock
	Logger         *slog.Logger
	GatewayTimeout time.Duration
	NewTicker      TickerFactory
}

// CheckoutRunner owns live sessions and carries out the intents the
// orchestrator emits. Events for one session are serialised by its mutex.
type CheckoutRunner struct {
	deps RunnerDeps

	mu       sync.Mutex
	sessions map[string]*liveSession
	inflight sync.WaitGroup
}

type liveSession struct {
	mu         sync.Mutex
	state      checkout.Session
	stopTimer  func()
	lastActive time.Time
	removed    bool
}

func NewCheckoutRunner(deps RunnerDeps) *CheckoutRunner {
	if deps.NewTicker == nil {
		deps.NewTicker = NewRealTicker
	}
	if deps.GatewayTimeout <= 0 {
		deps.GatewayTimeout = 30 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &CheckoutRunner{deps: deps, sessions: map[string]*liveSession{}}
}

func (r *CheckoutRunner) Start(_ context.Context, res checkout.ReservationData) (checkout.Session, error) {
	now := r.deps.Clock.Now()
	tr := r.deps.Orchestrator.Start(res, now)
	ls := &liveSession{state: tr.Session, lastActive: now}

	r.mu.Lock()
	r.sessions[tr.Session.ID] = ls
	r.mu.Unlock()

	r.deps.Logger.Info("checkout session started", "session_id", tr.Session.ID, "quote_error", tr.Session.QuoteErr)
	return tr.Session, nil
}

func (r *CheckoutRunner) Get(_ context.Context, id string) (checkout.Session, error) {
	ls, err := r.lookup(id)
	if err != nil {
		return checkout.Session{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	// polling counts as activity
	ls.lastActive = r.deps.Clock.Now()
	return ls.state, nil
}

func (r *CheckoutRunner) UpdateFields(_ context.Context, id string, fields map[checkout.FieldID]string) (checkout.Session, checkout.ValidationResult, error) {
	var errsOut checkout.ValidationResult
	s, err := r.with(id, func(ls *liveSession) error {
		merged := checkout.ValidationResult{}
		for field, raw := range fields {
			tr := r.deps.Orchestrator.FieldChanged(ls.state, field, raw)
			if tr.Err != nil {
				return tr.Err
			}
			ls.state = tr.Session
			for k, v := range tr.Errors {
				merged[k] = v
			}
		}
		errsOut = merged
		return nil
	})
	return s, errsOut, err
}

func (r *CheckoutRunner) SelectMethod(_ context.Context, id string, method checkout.PaymentMethod) (checkout.Session, error) {
	return r.with(id, func(ls *liveSession) error {
		return r.apply(ls, r.deps.Orchestrator.SelectMethod(ls.state, method))
	})
}

func (r *CheckoutRunner) Submit(_ context.Context, id string) (checkout.Session, checkout.ValidationResult, error) {
	var fieldErrs checkout.ValidationResult
	s, err := r.with(id, func(ls *liveSession) error {
		tr := r.deps.Orchestrator.Submit(ls.state, r.deps.Clock.Now())
		fieldErrs = tr.Errors
		return r.apply(ls, tr)
	})
	return s, fieldErrs, err
}

func (r *CheckoutRunner) Confirm(ctx context.Context, id string) (checkout.Session, error) {
	s, err := r.with(id, func(ls *liveSession) error {
		return r.apply(ls, r.deps.Orchestrator.Confirm(ls.state))
	})
	if err != nil {
		return s, err
	}
	if txID := s.TransactionID(); txID != "" {
		if _, uerr := r.deps.Store.UpdateStatusByTransactionID(ctx, txID, StatusConfirmed, r.deps.Clock.Now()); uerr != nil {
			r.deps.Logger.ErrorContext(ctx, "failed to mark reservation confirmed", "transaction_id", txID, "error", uerr)
		}
	}
	return s, nil
}

func (r *CheckoutRunner) Cancel(_ context.Context, id string) (checkout.Session, error) {
	return r.with(id, func(ls *liveSession) error {
		return r.apply(ls, r.deps.Orchestrator.Abort(ls.state))
	})
}

func (r *CheckoutRunner) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	ls, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	r.retire(ls)
	return nil
}

// SweepIdle drops sessions with no activity, polling included, for ttl and returns how many.
func (r *CheckoutRunner) SweepIdle(ttl time.Duration) int {
	cutoff := r.deps.Clock.Now().Add(-ttl)

	r.mu.Lock()
	var idle []*liveSession
	for id, ls := range r.sessions {
		ls.mu.Lock()
		stale := ls.lastActive.Before(cutoff)
		ls.mu.Unlock()
		if stale {
			idle = append(idle, ls)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, ls := range idle {
		r.retire(ls)
	}
	return len(idle)
}

// Close retires every session and waits for in-flight gateway calls.
func (r *CheckoutRunner) Close() {
	r.mu.Lock()
	all := make([]*liveSession, 0, len(r.sessions))
	for id, ls := range r.sessions {
		all = append(all, ls)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, ls := range all {
		r.retire(ls)
	}
	r.inflight.Wait()
}

func (r *CheckoutRunner) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Wait blocks until every in-flight gateway call has been applied.
func (r *CheckoutRunner) Wait() {
	r.inflight.Wait()
}

func (r *CheckoutRunner) lookup(id string) (*liveSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ls, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

func (r *CheckoutRunner) with(id string, fn func(ls *liveSession) error) (checkout.Session, error) {
	ls, err := r.lookup(id)
	if err != nil {
		return checkout.Session{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.removed {
		return checkout.Session{}, ErrSessionNotFound
	}
	now := r.deps.Clock.Now()
	ls.lastActive = now
	err = fn(ls)
	ls.state.UpdatedAt = now
	return ls.state, err
}

func (r *CheckoutRunner) retire(ls *liveSession) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.removed = true
	r.stopCountdown(ls)
}

// apply stores the new session and runs its intents. Caller holds ls.mu.
func (r *CheckoutRunner) apply(ls *liveSession, tr checkout.Transition) error {
	ls.state = tr.Session
	for _, in := range tr.Intents {
		switch it := in.(type) {
		case checkout.CallGateway:
			r.callGateway(ls, it.Request)
			if d := r.deps.Orchestrator.GatewayDispatched(ls.state); d.Err == nil {
				ls.state = d.Session
			}
		case checkout.StartCountdown:
			r.startCountdown(ls)
		case checkout.StopCountdown:
			r.stopCountdown(ls)
		}
	}
	return tr.Err
}

func (r *CheckoutRunner) callGateway(ls *liveSession, req checkout.PaymentRequest) {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.deps.GatewayTimeout)
		defer cancel()

		var outcome checkout.PaymentOutcome
		resp, err := r.deps.Gateway.CreateTransaction(ctx, req)
		if err != nil {
			outcome = checkout.Failed(checkout.AsGatewayError(err))
		} else {
			outcome = checkout.Succeeded(resp)
		}

		ls.mu.Lock()
		if ls.removed {
			ls.mu.Unlock()
			return
		}
		if aerr := r.apply(ls, r.deps.Orchestrator.GatewayResponded(ls.state, outcome)); aerr != nil {
			r.deps.Logger.Warn("gateway response discarded", "session_id", ls.state.ID, "error", aerr)
		}
		if err != nil {
			id := ls.state.ID
			ls.mu.Unlock()
			r.deps.Logger.Warn("checkout payment failed", "session_id", id, "error", err)
			return
		}
		// stored before ls.mu is released so a Confirm always finds the row
		evt, ok := r.recordPaid(ctx, ls.state, req, resp)
		ls.mu.Unlock()

		if ok {
			if perr := r.deps.Events.Publish(ctx, evt); perr != nil {
				r.deps.Logger.WarnContext(ctx, "failed to publish reservation event", "type", evt.Type, "error", perr)
			}
		}
	}()
}

// recordPaid stores the paid reservation and returns the event to publish.
// Caller holds ls.mu.
func (r *CheckoutRunner) recordPaid(ctx context.Context, s checkout.Session, req checkout.PaymentRequest, resp checkout.GatewayResponse) (ReservationEvent, bool) {
	if s.Phase != checkout.PhaseConfirmed && s.Phase != checkout.PhasePixPending {
		return ReservationEvent{}, false
	}
	now := r.deps.Clock.Now()
	txID := resp.TransactionID
	if txID == "" {
		txID = NewTransactionID(now.UnixMilli())
	}
	rec := recordFrom(PayRequest{Method: s.Method, Form: s.Form, Reservation: s.Reservation}, req, txID, now)
	if s.Phase == checkout.PhasePixPending {
		rec.Status = StatusPending
	}
	if _, err := r.deps.Store.Create(ctx, rec); err != nil {
		r.deps.Logger.ErrorContext(ctx, "failed to persist paid reservation", "reservation_id", rec.Code, "error", err)
	}
	return ReservationEvent{
		Type:          createdEventType(rec.Status),
		ReservationID: rec.Code,
		TransactionID: txID,
		Status:        rec.Status,
		PaymentMethod: string(s.Method),
		AmountCents:   rec.AmountCents,
		OccurredAt:    now,
	}, true
}

// startCountdown replaces any running ticker. Caller holds ls.mu.
func (r *CheckoutRunner) startCountdown(ls *liveSession) {
	r.stopCountdown(ls)

	ticker := r.deps.NewTicker(time.Second)
	done := make(chan struct{})
	var once sync.Once
	ls.stopTimer = func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C():
				ls.mu.Lock()
				if !ls.removed {
					_ = r.apply(ls, r.deps.Orchestrator.Tick(ls.state))
				}
				ls.mu.Unlock()
			}
		}
	}()
}

// stopCountdown is a no-op when no timer runs. Caller holds ls.mu.
func (r *CheckoutRunner) stopCountdown(ls *liveSession) {
	if ls.stopTimer != nil {
		ls.stopTimer()
		ls.stopTimer = nil
	}
}

// IsTicking reports whether a countdown is running for the session.
func (r *CheckoutRunner) IsTicking(id string) bool {
	ls, err := r.lookup(id)
	if err != nil {
		return false
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.stopTimer != nil
}
