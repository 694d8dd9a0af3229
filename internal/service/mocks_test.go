package service_test

import (
	"context"

	"github.com/google/uuid"

	"travelbook/internal/domain"
	"travelbook/internal/repo"
	"travelbook/internal/service"
	"travelbook/internal/unfurl"
)

// ---- mock repos ------------------------------------------------------------

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Only the funcs a test sets get called; calling an unset func panics,
// which is exactly what we want — it means the service touched storage
// when the test said it must not.
type mockTripRepo struct {
	create     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list       func(ctx context.Context) ([]domain.Trip, error)
	update     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	updateDays func(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error)
	updateTags func(ctx context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) UpdateDays(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error) {
	return m.updateDays(ctx, id, days)
}
func (m *mockTripRepo) UpdateTags(ctx context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error) {
	return m.updateTags(ctx, id, tags)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// mockEventRepo is a hand-written test double for repo.EventRepo.
type mockEventRepo struct {
	create     func(ctx context.Context, ev domain.Event) (domain.Event, error)
	getByID    func(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)
	update     func(ctx context.Context, ev domain.Event) (domain.Event, error)
	patch      func(ctx context.Context, tripID, eventID uuid.UUID, p domain.EventPatch) (domain.Event, error)
	delete     func(ctx context.Context, tripID, eventID uuid.UUID) error
}

func (m *mockEventRepo) Create(ctx context.Context, ev domain.Event) (domain.Event, error) {
	return m.create(ctx, ev)
}
func (m *mockEventRepo) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, tripID, eventID)
}
func (m *mockEventRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockEventRepo) Update(ctx context.Context, ev domain.Event) (domain.Event, error) {
	return m.update(ctx, ev)
}
func (m *mockEventRepo) Patch(ctx context.Context, tripID, eventID uuid.UUID, p domain.EventPatch) (domain.Event, error) {
	return m.patch(ctx, tripID, eventID, p)
}
func (m *mockEventRepo) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	return m.delete(ctx, tripID, eventID)
}

var _ repo.EventRepo = (*mockEventRepo)(nil)

// mockLinkRepo is a hand-written test double for repo.LinkRepo.
type mockLinkRepo struct {
	create     func(ctx context.Context, link domain.Link) (domain.Link, error)
	getByID    func(ctx context.Context, tripID, linkID uuid.UUID) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
	delete     func(ctx context.Context, tripID, linkID uuid.UUID) error
}

func (m *mockLinkRepo) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	return m.create(ctx, link)
}
func (m *mockLinkRepo) GetByID(ctx context.Context, tripID, linkID uuid.UUID) (domain.Link, error) {
	return m.getByID(ctx, tripID, linkID)
}
func (m *mockLinkRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockLinkRepo) Delete(ctx context.Context, tripID, linkID uuid.UUID) error {
	return m.delete(ctx, tripID, linkID)
}

var _ repo.LinkRepo = (*mockLinkRepo)(nil)

// ---- mock collaborators ----------------------------------------------------

// mockPublisher records which trips were published, in order.
type mockPublisher struct {
	published []uuid.UUID
}

func (m *mockPublisher) Publish(_ context.Context, tripID uuid.UUID) {
	m.published = append(m.published, tripID)
}

var _ service.Publisher = (*mockPublisher)(nil)

// mockUnfurler is a test double for the metadata client.
type mockUnfurler struct {
	fetch func(ctx context.Context, target string) (unfurl.Metadata, error)
}

func (m *mockUnfurler) Fetch(ctx context.Context, target string) (unfurl.Metadata, error) {
	return m.fetch(ctx, target)
}

var _ service.Unfurler = (*mockUnfurler)(nil)

// ---- helpers ---------------------------------------------------------------

// tripWithTags builds a stored trip with the given tags.
func tripWithTags(id uuid.UUID, tags ...domain.Tag) domain.Trip {
	return domain.Trip{ID: id, Name: "Kyoto", Days: 5, Tags: tags}
}

// validEvent builds a persistable event on day 1 at 09:00.
func validEvent(tripID uuid.UUID) domain.Event {
	return domain.Event{
		TripID:  tripID,
		Name:    "Fushimi Inari",
		TagID:   "sightseeing",
		Day:     1,
		Time:    "09:00",
		EndTime: "10:30",
	}
}
