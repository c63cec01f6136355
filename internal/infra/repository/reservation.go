package repository

import (
	"context"
	"time"

	"guarupark-checkout/internal/infra"
	sqlc "guarupark-checkout/internal/infra/sqlc/generated"
	"guarupark-checkout/internal/pkg/pgconv"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	UpdateReservationStatusByTransactionID(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusByTransactionIDParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, rec commands.ReservationRecord) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, toCreateParams(rec))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err, infra.ClassifyPgError(err))
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatusByTransactionID(ctx context.Context, transactionID, status string, at time.Time) (int64, error) {
	n, err := r.queries.UpdateReservationStatusByTransactionID(ctx, r.db, sqlc.UpdateReservationStatusByTransactionIDParams{
		TransactionID: pgconv.StringToPgtype(transactionID),
		Status:        status,
		UpdatedAt:     pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return n, nil
}

func toCreateParams(rec commands.ReservationRecord) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		Code:          rec.Code,
		TransactionID: pgconv.OptionalText(rec.TransactionID),
		Status:        rec.Status,
		PaymentMethod: string(rec.PaymentMethod),
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		CustomerPhone: rec.CustomerPhone,
		Document:      rec.Document,
		VehiclePlate:  rec.VehiclePlate,
		VehicleType:   rec.VehicleType,
		EntryDate:     rec.EntryDate,
		EntryTime:     rec.EntryTime,
		ExitDate:      rec.ExitDate,
		ExitTime:      rec.ExitTime,
		ParkingType:   string(rec.ParkingType),
		Insurance:     rec.Insurance,
		AmountCents:   rec.AmountCents,
		Installments:  int32(rec.Installments),
		CreatedAt:     pgconv.TimeToPgtype(rec.CreatedAt),
	}
}
