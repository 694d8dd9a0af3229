// Package service contains the business logic for the travel planner.
// Services validate inputs, enforce business rules, orchestrate repo
// calls, and publish a feed update after every committed mutation.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelbook/internal/domain"
	"travelbook/internal/repo"
)

// Publisher pushes a fresh snapshot to feed subscribers of a trip.
// Satisfied by *feed.Feed. Services treat publishing as fire-and-forget:
// the write has already committed, and the feed's only promise is that
// the latest snapshot eventually arrives.
type Publisher interface {
	Publish(ctx context.Context, tripID uuid.UUID)
}

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
	pub   Publisher
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// pub may be nil in tests that do not exercise the feed.
func NewTripService(trips repo.TripRepo, pub Publisher) *TripService {
	return &TripService{trips: trips, pub: pub}
}

// Create validates and persists a new trip. A trip created without tags
// gets the default tag set; a day count below 1 is raised to 1.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validateImage(trip.CoverImage); err != nil {
		return domain.Trip{}, err
	}
	if trip.Days < 1 {
		trip.Days = 1
	}
	if len(trip.Tags) == 0 {
		trip.Tags = domain.DefaultTags()
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validateImage(trip.CoverImage); err != nil {
		return domain.Trip{}, err
	}
	if trip.Days < 1 {
		trip.Days = 1
	}

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	s.publish(ctx, result.ID)
	return result, nil
}

// SetDayCount changes the trip's day count, clamped to a minimum of 1.
// Events on days beyond the new count are not deleted — they stay in
// storage and simply have no grid column until the count grows again.
func (s *TripService) SetDayCount(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error) {
	if days < 1 {
		days = 1
	}

	result, err := s.trips.UpdateDays(ctx, id, days)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetDayCount: %w", err)
	}
	s.publish(ctx, result.ID)
	return result, nil
}

// AddTag appends a tag to the trip's embedded tag list with set-union
// semantics: a duplicate tag ID is a silent no-op. Names are deliberately
// not deduplicated. A tag supplied without an ID gets a generated one.
func (s *TripService) AddTag(ctx context.Context, tripID uuid.UUID, tag domain.Tag) (domain.Trip, error) {
	if strings.TrimSpace(tag.Name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: tag name is required", domain.ErrValidation)
	}
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddTag: %w", err)
	}
	if trip.HasTag(tag.ID) {
		return trip, nil
	}

	result, err := s.trips.UpdateTags(ctx, tripID, append(trip.Tags, tag))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddTag: %w", err)
	}
	s.publish(ctx, result.ID)
	return result, nil
}

// Delete removes a trip. Events and links cascade in storage, so a trip
// with zero of either deletes just as cleanly as a full one. Irreversible.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func (s *TripService) publish(ctx context.Context, tripID uuid.UUID) {
	if s.pub != nil {
		s.pub.Publish(ctx, tripID)
	}
}

// validateImage rejects inline image blobs over the document size ceiling.
// The check is on the encoded data-URL length, which is what actually
// lands in the document.
func validateImage(dataURL string) error {
	if len(dataURL) > domain.MaxImageBytes {
		return fmt.Errorf("%w: image must be under %dKB", domain.ErrImageTooLarge, domain.MaxImageBytes/1024)
	}
	return nil
}
