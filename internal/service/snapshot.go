package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"travelbook/internal/domain"
	"travelbook/internal/repo"
)

// NewSnapshotLoader returns the load function the feed uses to assemble
// the authoritative view of one trip. The three reads are not a
// transaction — per-document last-write-wins is the store's only
// guarantee, and a snapshot torn across a concurrent write is simply
// superseded by the publish that write triggers.
func NewSnapshotLoader(trips repo.TripRepo, events repo.EventRepo, links repo.LinkRepo) func(context.Context, uuid.UUID) (domain.Snapshot, error) {
	return func(ctx context.Context, tripID uuid.UUID) (domain.Snapshot, error) {
		trip, err := trips.GetByID(ctx, tripID)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("service.SnapshotLoader: trip: %w", err)
		}
		evs, err := events.ListByTrip(ctx, tripID)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("service.SnapshotLoader: events: %w", err)
		}
		if evs == nil {
			evs = []domain.Event{}
		}
		ls, err := links.ListByTrip(ctx, tripID)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("service.SnapshotLoader: links: %w", err)
		}
		if ls == nil {
			ls = []domain.Link{}
		}
		return domain.Snapshot{Trip: trip, Events: evs, Links: ls}, nil
	}
}
