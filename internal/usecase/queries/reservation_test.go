//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guarupark-checkout/internal/infra"
	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/queries"
	queriesmock "guarupark-checkout/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetByCode(t *testing.T) {
	ctx := context.Background()
	view := &queries.ReservationView{ID: uuid.New(), Code: "GP00000001"}

	t.Run("looks up GP codes case-insensitively", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().FindByCode(gomock.Any(), "GP00000001").Return(view, nil).Times(1)

		got, err := queries.NewReservationQueries(repo).GetByCode(ctx, " gp00000001 ")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("uuid goes to the id lookup", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := queries.NewReservationQueries(repo).GetByCode(ctx, view.ID.String())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found maps to the query sentinel", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := queries.NewReservationQueries(repo).GetByCode(ctx, "GP99999999")
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("other failures pass through", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to get reservation", errors.New("timeout"), infra.KindDBFailure)).Times(1)

		_, err := queries.NewReservationQueries(repo).GetByCode(ctx, "GP00000001")
		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	rows := make([]*queries.ReservationListItem, 3)
	for i := range rows {
		rows[i] = &queries.ReservationListItem{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}

	t.Run("extra row yields a cursor for the last returned item", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().ListAfter(gomock.Any(), nil, nil, int32(3)).Return(rows, nil).Times(1)

		items, next, err := queries.NewReservationQueries(repo).List(ctx, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		ts, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, ts.Equal(rows[1].CreatedAt))
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().ListAfter(gomock.Any(), nil, nil, int32(queries.DefaultListLimit+1)).Return(rows, nil).Times(1)

		items, next, err := queries.NewReservationQueries(repo).List(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, items, 3)
		assert.Nil(t, next)
	})

	t.Run("cursor is decoded into keyset bounds", func(t *testing.T) {
		after := queries.EncodeAfterCursor(rows[0].CreatedAt, rows[0].ID)
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().ListAfter(gomock.Any(), gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1)).
			DoAndReturn(func(_ context.Context, at *time.Time, id *uuid.UUID, _ int32) ([]*queries.ReservationListItem, error) {
				require.NotNil(t, at)
				require.NotNil(t, id)
				assert.True(t, at.Equal(rows[0].CreatedAt))
				assert.Equal(t, rows[0].ID, *id)
				return rows[1:], nil
			}).Times(1)

		items, _, err := queries.NewReservationQueries(repo).List(ctx, &queries.Cursor{After: after}, 500)
		require.NoError(t, err)
		if diff := cmp.Diff(rows[1:], items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("garbage cursor", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))

		_, _, err := queries.NewReservationQueries(repo).List(ctx, &queries.Cursor{After: "%%%"}, 10)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), "got %v", err)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 1, 10, 12, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	ts, got, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, ts.Equal(at))
	assert.Equal(t, id, got)

	_, _, err = queries.DecodeAfterCursor("")
	assert.Error(t, err)
}
