package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, bookingController *controllers.BookingController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(verifier)

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("GET /events/{slug}/similar", eventController.GetSimilarEvents)
	mux.HandleFunc("POST /events", admin(eventController.CreateEvent))

	// Bookings
	mux.HandleFunc("POST /bookings", bookingController.CreateBooking)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
