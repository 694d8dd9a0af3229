// Package repo contains all database access logic for the travel planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"travelbook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by created_at descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// UpdateDays sets only the trip's day count.
	// Returns domain.ErrNotFound if the trip does not exist.
	UpdateDays(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error)

	// UpdateTags replaces the trip's embedded tag list.
	// Returns domain.ErrNotFound if the trip does not exist.
	UpdateTags(ctx context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error)

	// Delete removes a trip by ID; events and links cascade with it.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, name, start_date, days, tags, cover_image, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (name, start_date, days, tags, cover_image)
		VALUES (@name, @start_date, @days, @tags, @cover_image)
		RETURNING ` + tripColumns

	tags, err := tagsToJSON(trip.Tags)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"name":        trip.Name,
		"start_date":  trip.StartDate, // nil becomes NULL
		"days":        trip.Days,
		"tags":        tags,
		"cover_image": trip.CoverImage,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name        = @name,
		    start_date  = @start_date,
		    days        = @days,
		    tags        = @tags,
		    cover_image = @cover_image,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	tags, err := tagsToJSON(trip.Tags)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"name":        trip.Name,
		"start_date":  trip.StartDate,
		"days":        trip.Days,
		"tags":        tags,
		"cover_image": trip.CoverImage,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) UpdateDays(ctx context.Context, id uuid.UUID, days int) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET days = @days, updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "days": days}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateDays: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) UpdateTags(ctx context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET tags = @tags, updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	encoded, err := tagsToJSON(tags)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateTags: %w", err)
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "tags": encoded}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateTags: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tagsToJSON encodes the embedded tag list for the jsonb column.
// A nil slice is stored as an empty array, never as SQL NULL.
func tagsToJSON(tags []domain.Tag) ([]byte, error) {
	if tags == nil {
		tags = []domain.Tag{}
	}
	return json.Marshal(tags)
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, nullable start_date, and jsonb tag conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		tagsRaw   []byte
	)

	err := s.Scan(&id, &t.Name, &startDate, &t.Days, &tagsRaw, &t.CoverImage, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if startDate.Valid {
		sd := startDate.Time
		t.StartDate = &sd
	}
	t.Tags = []domain.Tag{}
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &t.Tags); err != nil {
			return domain.Trip{}, fmt.Errorf("decode tags: %w", err)
		}
	}

	return t, nil
}
