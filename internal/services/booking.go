package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

const (
	bookingEventMissing = "Referenced event does not exist."
	bookingServerError  = "Unexpected server error."
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	mailer         domain.Mailer
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewBookingService(bookingRepo domain.BookingRepository, eventRepo domain.EventRepository, mailer domain.Mailer, logger *slog.Logger, timeout time.Duration) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		mailer:         mailer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateBooking validates the submission, checks that the referenced
// event exists, and persists the booking. It never returns an error
// across this boundary: every failure comes back as a BookingResult with
// Success false and a message the UI can render inline. Storage-origin
// failures are reported generically.
func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) *domain.BookingResult {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking := &domain.Booking{
		EventID: strings.TrimSpace(eventID),
		Email:   email,
	}
	if err := booking.Prepare(); err != nil {
		return &domain.BookingResult{Success: false, Error: err.Error()}
	}

	// An id that is not even a UUID cannot reference an event; reject it
	// before touching storage.
	if _, err := uuid.Parse(booking.EventID); err != nil {
		return &domain.BookingResult{Success: false, Error: bookingEventMissing}
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.BookingResult{Success: false, Error: bookingEventMissing}
		}
		s.logger.Error("booking event lookup failed", "event_id", booking.EventID, "err", err)
		return &domain.BookingResult{Success: false, Error: bookingServerError}
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return &domain.BookingResult{Success: false, Error: ve.Message}
		}
		s.logger.Error("booking create failed", "event_id", booking.EventID, "err", err)
		return &domain.BookingResult{Success: false, Error: bookingServerError}
	}

	s.sendConfirmation(booking, event)

	return &domain.BookingResult{Success: true, Booking: booking}
}

// sendConfirmation emails event details to the booker. Best effort: a
// mail failure is logged and never fails the booking.
func (s *bookingService) sendConfirmation(booking *domain.Booking, event *domain.Event) {
	if s.mailer == nil {
		return
	}
	subject := fmt.Sprintf("You're booked: %s", event.Title)
	text := fmt.Sprintf(
		"Your spot at %s is confirmed.\n\nWhen: %s at %s\nWhere: %s, %s\nOrganized by: %s\n",
		event.Title, event.Date, event.Time, event.Venue, event.Location, event.Organizer,
	)
	html := fmt.Sprintf(
		"<p>Your spot at <strong>%s</strong> is confirmed.</p><p>When: %s at %s<br>Where: %s, %s<br>Organized by: %s</p>",
		event.Title, event.Date, event.Time, event.Venue, event.Location, event.Organizer,
	)
	if err := s.mailer.Send(booking.Email, subject, html, text); err != nil {
		s.logger.Warn("booking confirmation email failed", "event_id", booking.EventID, "err", err)
	}
}
