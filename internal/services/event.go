package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

// SimilarityStrategy ranks events related to the one identified by slug.
// Implementations must never include the source event in the result and
// must return an empty slice, not an error, when nothing is similar.
type SimilarityStrategy interface {
	Similar(ctx context.Context, slug string) ([]*domain.Event, error)
}

// SharedTagSimilarity is the default strategy: events sharing the most
// tags with the source event rank first. It delegates the ranking to the
// event repository.
type SharedTagSimilarity struct {
	Events domain.EventRepository
}

func (s SharedTagSimilarity) Similar(ctx context.Context, slug string) ([]*domain.Event, error) {
	return s.Events.ListSimilar(ctx, slug)
}

type eventService struct {
	eventRepo      domain.EventRepository
	similarity     SimilarityStrategy
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, similarity SimilarityStrategy, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		similarity:     similarity,
		contextTimeout: timeout,
	}
}

// CreateEvent validates and normalizes the event, then persists it.
// Validation runs to completion before the write is issued; a slug
// collision not caught by validation surfaces as domain.ErrConflict.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := event.Prepare(); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrConflict
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) SimilarEvents(ctx context.Context, slug string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.similarity.Similar(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("similar events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
