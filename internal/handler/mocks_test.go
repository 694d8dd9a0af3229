package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain"
	"travelbook/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list        func(ctx context.Context) ([]domain.Trip, error)
	update      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	setDayCount func(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error)
	addTag      func(ctx context.Context, tripID uuid.UUID, tag domain.Tag) (domain.Trip, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) SetDayCount(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error) {
	return m.setDayCount(ctx, id, days)
}
func (m *mockTripServicer) AddTag(ctx context.Context, tripID uuid.UUID, tag domain.Tag) (domain.Trip, error) {
	return m.addTag(ctx, tripID, tag)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockEventServicer is a test double for handler.EventServicer.
type mockEventServicer struct {
	create         func(ctx context.Context, ev domain.Event) (domain.Event, error)
	getByID        func(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)
	listByTrip     func(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)
	update         func(ctx context.Context, ev domain.Event) (domain.Event, error)
	reschedule     func(ctx context.Context, tripID, eventID uuid.UUID, targetDay, targetHour int) (domain.Event, error)
	setEndTime     func(ctx context.Context, tripID, eventID uuid.UUID, endTime string) (domain.Event, error)
	createFromLink func(ctx context.Context, tripID, linkID uuid.UUID, targetDay, targetHour int) (domain.Event, error)
	delete         func(ctx context.Context, tripID, eventID uuid.UUID) error
}

func (m *mockEventServicer) Create(ctx context.Context, ev domain.Event) (domain.Event, error) {
	return m.create(ctx, ev)
}
func (m *mockEventServicer) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, tripID, eventID)
}
func (m *mockEventServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockEventServicer) Update(ctx context.Context, ev domain.Event) (domain.Event, error) {
	return m.update(ctx, ev)
}
func (m *mockEventServicer) Reschedule(ctx context.Context, tripID, eventID uuid.UUID, targetDay, targetHour int) (domain.Event, error) {
	return m.reschedule(ctx, tripID, eventID, targetDay, targetHour)
}
func (m *mockEventServicer) SetEndTime(ctx context.Context, tripID, eventID uuid.UUID, endTime string) (domain.Event, error) {
	return m.setEndTime(ctx, tripID, eventID, endTime)
}
func (m *mockEventServicer) CreateFromLink(ctx context.Context, tripID, linkID uuid.UUID, targetDay, targetHour int) (domain.Event, error) {
	return m.createFromLink(ctx, tripID, linkID, targetDay, targetHour)
}
func (m *mockEventServicer) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	return m.delete(ctx, tripID, eventID)
}

var _ handler.EventServicer = (*mockEventServicer)(nil)

// mockLinkServicer is a test double for handler.LinkServicer.
type mockLinkServicer struct {
	add        func(ctx context.Context, tripID uuid.UUID, rawURL, title string) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
	delete     func(ctx context.Context, tripID, linkID uuid.UUID) error
}

func (m *mockLinkServicer) Add(ctx context.Context, tripID uuid.UUID, rawURL, title string) (domain.Link, error) {
	return m.add(ctx, tripID, rawURL, title)
}
func (m *mockLinkServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockLinkServicer) Delete(ctx context.Context, tripID, linkID uuid.UUID) error {
	return m.delete(ctx, tripID, linkID)
}

var _ handler.LinkServicer = (*mockLinkServicer)(nil)

// mockSubscriber is a test double for handler.Subscriber.
type mockSubscriber struct {
	subscribe func(ctx context.Context, tripID uuid.UUID) (<-chan domain.Snapshot, error)
}

func (m *mockSubscriber) Subscribe(ctx context.Context, tripID uuid.UUID) (<-chan domain.Snapshot, error) {
	return m.subscribe(ctx, tripID)
}

var _ handler.Subscriber = (*mockSubscriber)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the route table,
// mirroring how main.go mounts it in production. Nil mocks are fine for
// routes the test never hits.
func newHTTPHandler(trips handler.TripServicer, events handler.EventServicer, links handler.LinkServicer, feed handler.Subscriber) http.Handler {
	return handler.NewServer(trips, events, links, feed).Routes()
}

func tripFixture() domain.Trip {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        uuid.New(),
		Name:      "Kyoto",
		StartDate: &start,
		Days:      5,
		Tags:      domain.DefaultTags(),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func eventFixture(tripID uuid.UUID) domain.Event {
	return domain.Event{
		ID:      uuid.New(),
		TripID:  tripID,
		Name:    "Fushimi Inari",
		TagID:   "sightseeing",
		Day:     1,
		Time:    "09:00",
		EndTime: "10:30",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
