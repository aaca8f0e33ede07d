package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO bookings \(event_id, email, created_at, updated_at\)`).
			WithArgs("ev-uuid-1", "user@example.com", now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("bk-uuid-1"))

		repo := NewBookingRepository(Static(db))
		booking := &domain.Booking{
			EventID:   "ev-uuid-1",
			Email:     "user@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, booking))
		assert.Equal(t, "bk-uuid-1", booking.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fk violation maps to validation error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_event_id_fkey"})

		repo := NewBookingRepository(Static(db))
		err = repo.Create(ctx, &domain.Booking{EventID: "ev-gone", Email: "user@example.com"})
		require.Error(t, err)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Referenced event does not exist.", ve.Message)
	})

	t.Run("db error passes through", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnError(sql.ErrConnDone)

		repo := NewBookingRepository(Static(db))
		err = repo.Create(ctx, &domain.Booking{EventID: "ev-uuid-1", Email: "user@example.com"})
		require.ErrorIs(t, err, sql.ErrConnDone)
	})
}
