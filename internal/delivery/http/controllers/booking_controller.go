package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CreateBookingRequest is the request body for POST /bookings. It mirrors
// the submission payload the booking form sends: slug rides along for the
// UI's benefit but the event is referenced by id.
type CreateBookingRequest struct {
	EventID string `json:"eventId"`
	Slug    string `json:"slug"`
	Email   string `json:"email"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a spot at an event
// @Description Creates a booking for the given event id and email. The response body always carries the success flag; failures come back as a renderable message, not an error envelope.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking submission"
// @Success 201 {object} domain.BookingResult "success true, booking set"
// @Failure 400 {object} domain.BookingResult "success false, error set"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}

	result := c.Service.CreateBooking(r.Context(), req.EventID, req.Email)
	if !result.Success {
		helpers.WriteJSON(w, http.StatusBadRequest, result)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, result)
}
