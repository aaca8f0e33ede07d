package domain

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Event represents a listed event. Date and Time are stored in their
// normalized forms (YYYY-MM-DD and 24-hour HH:mm).
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var nonAlphanumericRuns = regexp.MustCompile(`[^a-z0-9]+`)

// SlugifyTitle derives a URL-safe slug from a title: lowercase, trim,
// collapse every run of non-alphanumeric characters to a single dash,
// and strip leading/trailing dashes. Deterministic and idempotent.
func SlugifyTitle(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonAlphanumericRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// dateLayouts are the accepted input forms for event dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// NormalizeDate parses a date-like input and rewrites it to YYYY-MM-DD.
func NormalizeDate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", NewValidationError("date", "Invalid date format")
}

var clockTime = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// timeLayouts are the fallback forms tried when the input is not already
// a two-digit HH:mm or HH:mm:ss clock value.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
}

// NormalizeTime parses a time-like input and rewrites it to zero-padded
// 24-hour HH:mm. Values like HH:mm and HH:mm:ss are accepted directly;
// anything else goes through a generic time parse. Out-of-range hours or
// minutes are rejected even when the shape matches.
func NormalizeTime(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	var hours, minutes int
	if m := clockTime.FindStringSubmatch(trimmed); m != nil {
		hours, _ = strconv.Atoi(m[1])
		minutes, _ = strconv.Atoi(m[2])
	} else {
		parsed := false
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				hours, minutes = t.Hour(), t.Minute()
				parsed = true
				break
			}
		}
		if !parsed {
			return "", NewValidationError("time", "Invalid time format")
		}
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", NewValidationError("time", "Invalid time value")
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// Prepare validates and normalizes the event in place, making it eligible
// for persistence. It checks every required scalar field, the agenda and
// tags sequences, normalizes date and time, and generates the slug from
// the title when the slug is absent. Callers that change the title must
// clear the slug so it is regenerated. The first violation aborts with a
// ValidationError; nothing is mutated on the storage side.
func (e *Event) Prepare() error {
	required := []struct {
		name  string
		value *string
	}{
		{"title", &e.Title},
		{"description", &e.Description},
		{"overview", &e.Overview},
		{"image", &e.Image},
		{"venue", &e.Venue},
		{"location", &e.Location},
		{"date", &e.Date},
		{"time", &e.Time},
		{"mode", &e.Mode},
		{"audience", &e.Audience},
		{"organizer", &e.Organizer},
	}
	for _, f := range required {
		trimmed := strings.TrimSpace(*f.value)
		if trimmed == "" {
			return NewValidationError(f.name, f.name+" is required and cannot be empty")
		}
		*f.value = trimmed
	}

	if err := validateStringSlice("agenda", e.Agenda); err != nil {
		return err
	}
	if err := validateStringSlice("tags", e.Tags); err != nil {
		return err
	}

	date, err := NormalizeDate(e.Date)
	if err != nil {
		return err
	}
	e.Date = date

	clock, err := NormalizeTime(e.Time)
	if err != nil {
		return err
	}
	e.Time = clock

	if e.Slug == "" {
		e.Slug = SlugifyTitle(e.Title)
	}
	return nil
}

func validateStringSlice(field string, values []string) error {
	if len(values) == 0 {
		return NewValidationError(field, field+" must be a non-empty array of strings")
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return NewValidationError(field, field+" must be a non-empty array of strings")
		}
	}
	return nil
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListSimilar(ctx context.Context, slug string) ([]*Event, error)
}

// EventService defines the application operations over events
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	SimilarEvents(ctx context.Context, slug string) ([]*Event, error)
}
