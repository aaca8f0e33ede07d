package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Booking represents one booked spot at an event. Many bookings may
// reference one event; an event never enumerates its bookings.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// emailPattern is the external contract for acceptable emails: a
// local@domain.tld shape with no whitespace or extra @ signs.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Prepare validates the booking's email and normalizes it to its
// trimmed, lowercased form. The referenced event's existence is checked
// by the booking service, which owns repository access.
func (b *Booking) Prepare() error {
	trimmed := strings.TrimSpace(b.Email)
	if trimmed == "" {
		return NewValidationError("email", "Email is required and cannot be empty.")
	}
	if !emailPattern.MatchString(trimmed) {
		return NewValidationError("email", "Email format is invalid.")
	}
	b.Email = strings.ToLower(trimmed)
	return nil
}

// BookingResult is the value returned to the UI for a booking submission.
// Failures come back as a message, never as a raised error, so the caller
// can render them inline.
type BookingResult struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
}

// BookingService defines the application operations over bookings
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) *BookingResult
}
