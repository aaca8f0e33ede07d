package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"eventhub/internal/domain"
)

// foreignKeyViolation is the Postgres error code raised when a booking's
// event_id points at no event row.
const foreignKeyViolation = "23503"

type bookingRepository struct {
	provider DBProvider
}

func NewBookingRepository(provider DBProvider) domain.BookingRepository {
	return &bookingRepository{provider: provider}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = db.QueryRowContext(ctx, query, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if err != nil {
		// The service checks existence before writing; the constraint
		// still catches an event deleted between check and insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.NewValidationError("event_id", "Referenced event does not exist.")
		}
		return err
	}
	return nil
}
