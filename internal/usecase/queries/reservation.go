package queries

import (
	"context"
	"strings"
	"time"

	"guarupark-checkout/internal/infra"
	"guarupark-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrReservationNotFound = errs.New("reservation not found")
)

type ReservationQueries interface {
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationViewRepo interface {
	FindByCode(ctx context.Context, code string) (*ReservationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListAfter(ctx context.Context, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// GetByCode accepts a GP code or the row uuid.
func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	code = strings.TrimSpace(code)
	var view *ReservationView
	var err error
	if id, perr := uuid.Parse(code); perr == nil {
		view, err = q.repo.FindByID(ctx, id)
	} else {
		view, err = q.repo.FindByCode(ctx, strings.ToUpper(code))
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterAt *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		ts, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterAt, afterID = &ts, &id
	}

	// one extra row tells whether another page exists
	rows, err := q.repo.ListAfter(ctx, afterAt, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
