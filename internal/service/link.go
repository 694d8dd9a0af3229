package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelbook/internal/domain"
	"travelbook/internal/repo"
	"travelbook/internal/unfurl"
)

// Unfurler fetches preview metadata for a URL. Satisfied by
// *unfurl.Client; defined here so link tests can stub the network.
type Unfurler interface {
	Fetch(ctx context.Context, target string) (unfurl.Metadata, error)
}

// LinkService implements business logic for the reference link collector.
type LinkService struct {
	trips    repo.TripRepo
	links    repo.LinkRepo
	unfurler Unfurler
	pub      Publisher
}

// NewLinkService constructs a LinkService backed by the provided repos
// and unfurling client.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo, unfurler Unfurler, pub Publisher) *LinkService {
	return &LinkService{trips: trips, links: links, unfurler: unfurler, pub: pub}
}

// Add saves a reference link for a trip. The URL gets https:// prepended
// when no scheme is present. Metadata is fetched best-effort: on fetch
// failure the link is still saved with the URL standing in for a missing
// title and empty description/image — unfurl failure is never a create
// failure. A caller-supplied title always wins over the fetched one.
func (s *LinkService) Add(ctx context.Context, tripID uuid.UUID, rawURL, title string) (domain.Link, error) {
	if strings.TrimSpace(rawURL) == "" {
		return domain.Link{}, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Add: %w", err)
	}

	target := rawURL
	if !strings.HasPrefix(target, "http") {
		target = "https://" + target
	}

	link := domain.Link{TripID: tripID, URL: target, Title: title}

	meta, err := s.unfurler.Fetch(ctx, target)
	if err == nil {
		if link.Title == "" {
			link.Title = meta.Title
		}
		link.Description = meta.Description
		link.Image = meta.ImageURL
	}
	if link.Title == "" {
		link.Title = target
	}

	result, err := s.links.Create(ctx, link)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Add: %w", err)
	}
	s.publish(ctx, tripID)
	return result, nil
}

// ListByTrip returns all links for a trip, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	links, err := s.links.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}

// Delete removes a link. Events created from it are untouched — no
// back-reference exists.
func (s *LinkService) Delete(ctx context.Context, tripID, linkID uuid.UUID) error {
	if err := s.links.Delete(ctx, tripID, linkID); err != nil {
		return fmt.Errorf("service.LinkService.Delete: %w", err)
	}
	s.publish(ctx, tripID)
	return nil
}

func (s *LinkService) publish(ctx context.Context, tripID uuid.UUID) {
	if s.pub != nil {
		s.pub.Publish(ctx, tripID)
	}
}
