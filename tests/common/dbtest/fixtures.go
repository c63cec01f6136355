//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestReservation inserts a stored pix reservation for a covered three day stay.
func CreateTestReservation(t *testing.T, db DBLike, code, transactionID, status string, createdAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (
		    code, transaction_id, status, payment_method, customer_name, customer_email,
		    document, vehicle_plate, vehicle_type, entry_date, entry_time, exit_date, exit_time,
		    parking_type, insurance, amount_cents, installments, created_at, updated_at
		) VALUES ($1, NULLIF($2, ''), $3, 'pix', 'João Silva', 'joao@example.com',
		    '12345678909', 'ABC1D23', 'carro', '2026-01-15', '14:00', '2026-01-18', '14:00',
		    'covered', false, 5700, 1, $4, $4)
		RETURNING id`,
		code, transactionID, status, createdAt).Scan(&id)
	require.NoError(t, err)

	return id
}

func ReservationStatus(t *testing.T, db DBLike, transactionID string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM reservations WHERE transaction_id = $1", transactionID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountReservations(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservations RESTART IDENTITY CASCADE")
	return err
}
