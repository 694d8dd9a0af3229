package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"travelbook/internal/domain"
)

// EventRepo defines the persistence operations for Events.
// All write and single-read operations are scoped by tripID to enforce ownership.
type EventRepo interface {
	// Create inserts a new event and returns the persisted record.
	Create(ctx context.Context, ev domain.Event) (domain.Event, error)

	// GetByID retrieves a single event by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no event with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)

	// ListByTrip returns all events for a trip ordered by day, then start
	// time. Events on days beyond the trip's current day count are included;
	// hiding them is the grid's concern, not storage's.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)

	// Update overwrites the mutable fields of an event, scoped to the given
	// tripID. Returns domain.ErrNotFound if it does not exist under that trip.
	Update(ctx context.Context, ev domain.Event) (domain.Event, error)

	// Patch merges only the non-nil fields of the patch into the event.
	// Time ordering is deliberately not validated here: the resize commit
	// writes end_time alone and owns its own invariant.
	Patch(ctx context.Context, tripID, eventID uuid.UUID, p domain.EventPatch) (domain.Event, error)

	// Delete removes an event by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	Delete(ctx context.Context, tripID, eventID uuid.UUID) error
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `id, trip_id, name, tag_id, day, start_time, end_time, content, images, created_at, updated_at`

func (r *pgEventRepo) Create(ctx context.Context, ev domain.Event) (domain.Event, error) {
	const q = `
		INSERT INTO events (trip_id, name, tag_id, day, start_time, end_time, content, images)
		VALUES (@trip_id, @name, @tag_id, @day, @start_time, @end_time, @content, @images)
		RETURNING ` + eventColumns

	images := ev.Images
	if images == nil {
		images = []string{}
	}

	args := pgx.NamedArgs{
		"trip_id":    ev.TripID,
		"name":       ev.Name,
		"tag_id":     ev.TagID,
		"day":        ev.Day,
		"start_time": ev.Time,
		"end_time":   ev.EndTime,
		"content":    ev.Content,
		"images":     images,
	}

	result, err := scanEvent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": eventID, "trip_id": tripID})
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	const q = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE trip_id = @trip_id
		ORDER BY day, start_time, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EventRepo.ListByTrip: scan: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByTrip: rows: %w", err)
	}
	return events, nil
}

func (r *pgEventRepo) Update(ctx context.Context, ev domain.Event) (domain.Event, error) {
	const q = `
		UPDATE events
		SET name       = @name,
		    tag_id     = @tag_id,
		    day        = @day,
		    start_time = @start_time,
		    end_time   = @end_time,
		    content    = @content,
		    images     = @images,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + eventColumns

	images := ev.Images
	if images == nil {
		images = []string{}
	}

	args := pgx.NamedArgs{
		"id":         ev.ID,
		"trip_id":    ev.TripID,
		"name":       ev.Name,
		"tag_id":     ev.TagID,
		"day":        ev.Day,
		"start_time": ev.Time,
		"end_time":   ev.EndTime,
		"content":    ev.Content,
		"images":     images,
	}

	result, err := scanEvent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Update: %w", err)
	}
	return result, nil
}

// Patch merges non-nil fields via COALESCE so a single statement covers
// both the resize commit (end_time only) and the drag commit (day +
// start_time + end_time).
func (r *pgEventRepo) Patch(ctx context.Context, tripID, eventID uuid.UUID, p domain.EventPatch) (domain.Event, error) {
	const q = `
		UPDATE events
		SET day        = COALESCE(@day, day),
		    start_time = COALESCE(@start_time, start_time),
		    end_time   = COALESCE(@end_time, end_time),
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + eventColumns

	args := pgx.NamedArgs{
		"id":         eventID,
		"trip_id":    tripID,
		"day":        p.Day,     // nil leaves the column untouched
		"start_time": p.Time,
		"end_time":   p.EndTime,
	}

	result, err := scanEvent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Patch: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	const q = `DELETE FROM events WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": eventID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.EventRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EventRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanEvent maps a single database row into a domain.Event.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		ev     domain.Event
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &ev.Name, &ev.TagID, &ev.Day, &ev.Time, &ev.EndTime,
		&ev.Content, &ev.Images, &ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}

	ev.ID = uuid.UUID(id.Bytes)
	ev.TripID = uuid.UUID(tripID.Bytes)
	if ev.Images == nil {
		ev.Images = []string{}
	}
	return ev, nil
}
