// Package handler implements the HTTP surface of the travel planner.
// All handlers are methods on Server. Methods are split into
// resource-specific files (trip.go, event.go, link.go, stream.go) but all
// share the same Server struct so they can access its dependencies.
//
// Routing is hand-written chi. The service interfaces are defined here, in
// the consumer package, following the Go convention: "accept interfaces,
// return concrete types". It lets handler tests inject a mock without
// touching the database or service layer.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"travelbook/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	SetDayCount(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error)
	AddTag(ctx context.Context, tripID uuid.UUID, tag domain.Tag) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventServicer defines the business operations the event handlers depend
// on, including the commit side of both grid gestures.
type EventServicer interface {
	Create(ctx context.Context, ev domain.Event) (domain.Event, error)
	GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)
	Update(ctx context.Context, ev domain.Event) (domain.Event, error)
	Reschedule(ctx context.Context, tripID, eventID uuid.UUID, targetDay, targetHour int) (domain.Event, error)
	SetEndTime(ctx context.Context, tripID, eventID uuid.UUID, endTime string) (domain.Event, error)
	CreateFromLink(ctx context.Context, tripID, linkID uuid.UUID, targetDay, targetHour int) (domain.Event, error)
	Delete(ctx context.Context, tripID, eventID uuid.UUID) error
}

// LinkServicer defines the business operations the link handlers depend on.
type LinkServicer interface {
	Add(ctx context.Context, tripID uuid.UUID, rawURL, title string) (domain.Link, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
	Delete(ctx context.Context, tripID, linkID uuid.UUID) error
}

// Subscriber is the feed side the stream handler depends on.
type Subscriber interface {
	Subscribe(ctx context.Context, tripID uuid.UUID) (<-chan domain.Snapshot, error)
}

// Server holds the handler dependencies and owns the route table.
type Server struct {
	trips  TripServicer
	events EventServicer
	links  LinkServicer
	feed   Subscriber
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, events EventServicer, links LinkServicer, feed Subscriber) *Server {
	return &Server{trips: trips, events: events, links: links, feed: feed}
}

// Routes returns the full route table. Mount it at the router root.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Route("/api/trips", func(r chi.Router) {
		r.Post("/", s.handleCreateTrip)
		r.Get("/", s.handleListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)
			r.Put("/days", s.handleSetDayCount)
			r.Post("/tags", s.handleAddTag)
			r.Get("/grid", s.handleGetGrid)
			r.Get("/stream", s.handleStream)

			r.Route("/events", func(r chi.Router) {
				r.Post("/", s.handleCreateEvent)
				r.Get("/", s.handleListEvents)
				r.Post("/from-link", s.handleCreateEventFromLink)

				r.Route("/{eventID}", func(r chi.Router) {
					r.Get("/", s.handleGetEvent)
					r.Put("/", s.handleUpdateEvent)
					r.Delete("/", s.handleDeleteEvent)
					r.Post("/reschedule", s.handleRescheduleEvent)
					r.Put("/end", s.handleSetEventEnd)
				})
			})

			r.Route("/links", func(r chi.Router) {
				r.Post("/", s.handleAddLink)
				r.Get("/", s.handleListLinks)
				r.Delete("/{linkID}", s.handleDeleteLink)
			})
		})
	})

	return r
}
