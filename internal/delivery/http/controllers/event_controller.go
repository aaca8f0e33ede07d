package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// slugPattern matches lowercase alphanumeric words separated by single dashes.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Responses use the exact user-facing messages the UI renders verbatim.
const (
	msgSlugRequired  = "Slug is required."
	msgSlugInvalid   = "Slug format is invalid."
	msgEventNotFound = "Event not found."
	msgServerError   = "Unexpected server error."
	msgSlugConflict  = "An event with this slug already exists."
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns a single event looked up by its unique slug.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug (lowercase, dash-separated)"
// @Success 200 {object} helpers.DataResponse "data contains the event"
// @Failure 400 {object} helpers.ErrorResponse "missing or malformed slug"
// @Failure 404 {object} helpers.ErrorResponse "no event with this slug"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if strings.TrimSpace(slug) == "" {
		helpers.WriteError(w, http.StatusBadRequest, msgSlugRequired)
		return
	}
	if !slugPattern.MatchString(slug) {
		helpers.WriteError(w, http.StatusBadRequest, msgSlugInvalid)
		return
	}

	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, msgEventNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	helpers.WriteData(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {object} helpers.DataResponse "data contains the event list"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	helpers.WriteData(w, http.StatusOK, events)
}

// GetSimilarEvents godoc
// @Summary List events similar to the one at slug
// @Description Returns events sharing tags with the given event, most overlap first. The source event is never included.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.DataResponse "data contains the similar events"
// @Failure 400 {object} helpers.ErrorResponse "missing or malformed slug"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{slug}/similar [get]
func (c *EventController) GetSimilarEvents(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if strings.TrimSpace(slug) == "" {
		helpers.WriteError(w, http.StatusBadRequest, msgSlugRequired)
		return
	}
	if !slugPattern.MatchString(slug) {
		helpers.WriteError(w, http.StatusBadRequest, msgSlugInvalid)
		return
	}

	events, err := c.Service.SimilarEvents(r.Context(), slug)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	helpers.WriteData(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event. The slug is generated from the title; date and time are normalized on write.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} helpers.DataResponse "data contains the created event"
// @Failure 400 {object} helpers.ErrorResponse "validation failure, field named in the message"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse "slug already in use"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      req.Agenda,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}

	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			helpers.WriteError(w, http.StatusBadRequest, ve.Message)
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteError(w, http.StatusConflict, msgSlugConflict)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}
	helpers.WriteData(w, http.StatusCreated, event)
}
