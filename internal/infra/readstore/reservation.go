package readstore

import (
	"context"
	"time"

	"guarupark-checkout/internal/infra"
	sqlc "guarupark-checkout/internal/infra/sqlc/generated"
	"guarupark-checkout/internal/pkg/pgconv"
	"guarupark-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Reservations, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListReservationsFirstPageRow, error)
	ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.ListReservationsKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByCode(ctx context.Context, code string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) ListAfter(ctx context.Context, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	if afterCreatedAt == nil || afterID == nil {
		rows, err := r.queries.ListReservationsFirstPage(ctx, r.db, limit)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list reservations first page", err)
		}
		result := make([]*queries.ReservationListItem, len(rows))
		for i, row := range rows {
			result[i] = toListItem(sqlc.ListReservationsKeysetRow(row))
		}
		return result, nil
	}

	rows, err := r.queries.ListReservationsKeyset(ctx, r.db, sqlc.ListReservationsKeysetParams{
		Column1: pgconv.TimeToPgtype(*afterCreatedAt),
		Column2: *afterID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations with keyset", err)
	}
	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = toListItem(row)
	}
	return result, nil
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:            row.ID,
		Code:          row.Code,
		TransactionID: pgconv.StringPtrFromPgtype(row.TransactionID),
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		VehiclePlate:  row.VehiclePlate,
		VehicleType:   row.VehicleType,
		EntryDate:     row.EntryDate,
		EntryTime:     row.EntryTime,
		ExitDate:      row.ExitDate,
		ExitTime:      row.ExitTime,
		ParkingType:   row.ParkingType,
		Insurance:     row.Insurance,
		AmountCents:   row.AmountCents,
		Installments:  row.Installments,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toListItem(row sqlc.ListReservationsKeysetRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:            row.ID,
		Code:          row.Code,
		CustomerName:  row.CustomerName,
		VehiclePlate:  row.VehiclePlate,
		EntryDate:     row.EntryDate,
		AmountCents:   row.AmountCents,
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
