package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelbook/internal/domain"
	"travelbook/internal/repo"
	"travelbook/internal/timegrid"
)

// EventService implements business logic for Event operations, including
// the commit side of the two grid gestures. It holds the trip and link
// repos as well because creating an event verifies the parent trip and a
// link drop reads the dropped link.
type EventService struct {
	trips  repo.TripRepo
	events repo.EventRepo
	links  repo.LinkRepo
	pub    Publisher
}

// NewEventService constructs an EventService backed by the provided repos.
func NewEventService(trips repo.TripRepo, events repo.EventRepo, links repo.LinkRepo, pub Publisher) *EventService {
	return &EventService{trips: trips, events: events, links: links, pub: pub}
}

// Create validates the event, verifies the parent trip exists, then
// persists. The end-after-start invariant is checked here, before any
// store call — a rejected event causes no mutation at all.
func (s *EventService) Create(ctx context.Context, ev domain.Event) (domain.Event, error) {
	if _, err := s.trips.GetByID(ctx, ev.TripID); err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	if err := validateEvent(ev); err != nil {
		return domain.Event{}, err
	}

	result, err := s.events.Create(ctx, ev)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	s.publish(ctx, result.TripID)
	return result, nil
}

// GetByID returns a single event, scoped to the given trip.
func (s *EventService) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	result, err := s.events.GetByID(ctx, tripID, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns all events for a trip.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EventService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	events, err := s.events.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.EventService.ListByTrip: %w", err)
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

// Update validates and persists changes to an existing event.
func (s *EventService) Update(ctx context.Context, ev domain.Event) (domain.Event, error) {
	if err := validateEvent(ev); err != nil {
		return domain.Event{}, err
	}

	result, err := s.events.Update(ctx, ev)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	s.publish(ctx, result.TripID)
	return result, nil
}

// Reschedule commits a drag-to-reschedule drop: the event moves to the
// target day with its start snapped to the target hour and its duration
// preserved. The caller has already applied the optimistic copy locally;
// if the write fails no rollback happens here — the feed keeps serving
// the last authoritative snapshot.
func (s *EventService) Reschedule(ctx context.Context, tripID, eventID uuid.UUID, targetDay, targetHour int) (domain.Event, error) {
	if targetDay < 1 {
		return domain.Event{}, fmt.Errorf("%w: day must be at least 1", domain.ErrValidation)
	}
	if targetHour < 0 || targetHour >= timegrid.HoursPerDay {
		return domain.Event{}, fmt.Errorf("%w: hour must be between 0 and 23", domain.ErrValidation)
	}

	ev, err := s.events.GetByID(ctx, tripID, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Reschedule: %w", err)
	}

	// Resize exclusion belongs to the client that holds the gesture
	// session; the server keeps none, so the drag starts unopposed.
	drag, err := timegrid.StartDrag(ev, nil)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Reschedule: %w", err)
	}
	r, _ := drag.Drop(targetDay, targetHour)

	result, err := s.events.Patch(ctx, tripID, eventID, domain.EventPatch{
		Day:     &r.Day,
		Time:    &r.Time,
		EndTime: &r.EndTime,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Reschedule: %w", err)
	}
	s.publish(ctx, tripID)
	return result, nil
}

// SetEndTime commits a resize release: exactly one write setting only
// endTime to the gesture's final preview value. Per the resize contract
// the time ordering is not re-validated here — the session already
// floored the duration at 15 minutes and clamped it at 23:59.
func (s *EventService) SetEndTime(ctx context.Context, tripID, eventID uuid.UUID, endTime string) (domain.Event, error) {
	result, err := s.events.Patch(ctx, tripID, eventID, domain.EventPatch{EndTime: &endTime})
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.SetEndTime: %w", err)
	}
	s.publish(ctx, tripID)
	return result, nil
}

// CreateFromLink commits a link drop: the dropped link becomes a new
// one-hour event at the target cell, tagged with the trip's first tag.
// The link itself is untouched and keeps working as a drag source.
func (s *EventService) CreateFromLink(ctx context.Context, tripID, linkID uuid.UUID, targetDay, targetHour int) (domain.Event, error) {
	if targetDay < 1 {
		return domain.Event{}, fmt.Errorf("%w: day must be at least 1", domain.ErrValidation)
	}
	if targetHour < 0 || targetHour >= timegrid.HoursPerDay {
		return domain.Event{}, fmt.Errorf("%w: hour must be between 0 and 23", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.CreateFromLink: %w", err)
	}
	link, err := s.links.GetByID(ctx, tripID, linkID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.CreateFromLink: %w", err)
	}

	draft := timegrid.LinkDropDraft(link, trip.FirstTagID(), targetDay, targetHour)

	result, err := s.events.Create(ctx, draft)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.CreateFromLink: %w", err)
	}
	s.publish(ctx, tripID)
	return result, nil
}

// Delete removes an event. Unconditional, no undo.
func (s *EventService) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	if err := s.events.Delete(ctx, tripID, eventID); err != nil {
		return fmt.Errorf("service.EventService.Delete: %w", err)
	}
	s.publish(ctx, tripID)
	return nil
}

func (s *EventService) publish(ctx context.Context, tripID uuid.UUID) {
	if s.pub != nil {
		s.pub.Publish(ctx, tripID)
	}
}

// validateEvent enforces business rules common to Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Day must be at least 1.
//   - An explicit end time must be strictly after the start time; an
//     empty end time is fine and reads as start plus one hour.
//   - Every inline image must be under the document size ceiling.
func validateEvent(ev domain.Event) error {
	if strings.TrimSpace(ev.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if ev.Day < 1 {
		return fmt.Errorf("%w: day must be at least 1", domain.ErrValidation)
	}
	if ev.EndTime != "" && timegrid.TimeToMinutes(ev.EndTime) <= timegrid.TimeToMinutes(ev.Time) {
		return fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	for _, img := range ev.Images {
		if err := validateImage(img); err != nil {
			return err
		}
	}
	return nil
}
