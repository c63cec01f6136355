//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/internal/infra"
	"guarupark-checkout/internal/infra/repository"
	sqlc "guarupark-checkout/internal/infra/sqlc/generated"
	"guarupark-checkout/internal/usecase/commands"
	repositorymock "guarupark-checkout/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func record() commands.ReservationRecord {
	return commands.ReservationRecord{
		Code:          "GP00000001",
		TransactionID: "tx_1",
		Status:        commands.StatusConfirmed,
		PaymentMethod: checkout.MethodPix,
		CustomerName:  "João Silva",
		CustomerEmail: "joao@example.com",
		Document:      "12345678909",
		VehiclePlate:  "ABC1D23",
		EntryDate:     "2026-01-15",
		EntryTime:     "14:00",
		ExitDate:      "2026-01-18",
		ExitTime:      "14:00",
		ParkingType:   checkout.ParkingCovered,
		AmountCents:   5700,
		Installments:  1,
		CreatedAt:     time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rec           func() commands.ReservationRecord
		setupMock     func(*repositorymock.MockReservationQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			rec:  record,
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
						assert.Equal(t, "GP00000001", arg.Code)
						assert.True(t, arg.TransactionID.Valid)
						assert.Equal(t, "covered", arg.ParkingType)
						assert.Equal(t, "pix", arg.PaymentMethod)
						return uuid.New(), nil
					})
			},
		},
		{
			name: "success: empty transaction id is stored as NULL",
			rec: func() commands.ReservationRecord {
				r := record()
				r.TransactionID = ""
				return r
			},
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
						assert.False(t, arg.TransactionID.Valid)
						return uuid.New(), nil
					})
			},
		},
		{
			name: "error: database error occurs",
			rec:  record,
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate reservation code",
			rec:  record,
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			id, err := repo.Create(ctx, tc.rec())

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

// =============================================================================
// Update Status Tests
// =============================================================================

func TestRepository_UpdateStatusByTransactionID(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 1, 10, 12, 30, 0, 0, time.UTC)

	t.Run("success: returns affected rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateReservationStatusByTransactionID(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationStatusByTransactionIDParams) (int64, error) {
				assert.Equal(t, "tx_1", arg.TransactionID.String)
				assert.Equal(t, "paid", arg.Status)
				assert.True(t, arg.UpdatedAt.Time.Equal(at))
				return 1, nil
			})

		n, err := repo.UpdateStatusByTransactionID(ctx, "tx_1", "paid", at)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateReservationStatusByTransactionID(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := repo.UpdateStatusByTransactionID(ctx, "tx_1", "paid", at)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
