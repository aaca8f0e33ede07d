package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	result      *domain.BookingResult
	lastEventID string
	lastEmail   string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, eventID, email string) *domain.BookingResult {
	f.lastEventID = eventID
	f.lastEmail = email
	return f.result
}

func bookingRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(raw))
}

func TestBookingController_CreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeBookingService{
			result: &domain.BookingResult{
				Success: true,
				Booking: &domain.Booking{ID: "bk-1", EventID: "ev-1", Email: "user@example.com"},
			},
		}
		controller := NewBookingController(testLogger, svc)
		rr := httptest.NewRecorder()
		controller.CreateBooking(rr, bookingRequest(t, CreateBookingRequest{
			EventID: "ev-1",
			Slug:    "react-summit-us-2025",
			Email:   "User@Example.com ",
		}))

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "ev-1", svc.lastEventID)
		assert.Equal(t, "User@Example.com ", svc.lastEmail)

		var result domain.BookingResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.Success)
		require.NotNil(t, result.Booking)
		assert.Equal(t, "user@example.com", result.Booking.Email)
		assert.Empty(t, result.Error)
	})

	t.Run("failure carries the renderable message", func(t *testing.T) {
		svc := &fakeBookingService{
			result: &domain.BookingResult{Success: false, Error: "Email format is invalid."},
		}
		controller := NewBookingController(testLogger, svc)
		rr := httptest.NewRecorder()
		controller.CreateBooking(rr, bookingRequest(t, CreateBookingRequest{
			EventID: "ev-1",
			Email:   "not-an-email",
		}))

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var result domain.BookingResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Equal(t, "Email format is invalid.", result.Error)
		assert.Nil(t, result.Booking)
	})

	t.Run("malformed body", func(t *testing.T) {
		controller := NewBookingController(testLogger, &fakeBookingService{})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{"))
		controller.CreateBooking(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
