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

// LinkRepo defines the persistence operations for reference Links.
// Links are append-and-delete only; there is no update path.
type LinkRepo interface {
	// Create inserts a new link and returns the persisted record.
	Create(ctx context.Context, link domain.Link) (domain.Link, error)

	// GetByID retrieves a single link by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no link with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, linkID uuid.UUID) (domain.Link, error)

	// ListByTrip returns all links for a trip, newest first.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)

	// Delete removes a link by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	Delete(ctx context.Context, tripID, linkID uuid.UUID) error
}

// pgLinkRepo is the Postgres implementation of LinkRepo.
type pgLinkRepo struct {
	db db
}

// NewLinkRepo constructs a LinkRepo backed by the provided db connection.
func NewLinkRepo(db db) LinkRepo {
	return &pgLinkRepo{db: db}
}

const linkColumns = `id, trip_id, url, title, description, image, created_at`

func (r *pgLinkRepo) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	const q = `
		INSERT INTO links (trip_id, url, title, description, image)
		VALUES (@trip_id, @url, @title, @description, @image)
		RETURNING ` + linkColumns

	args := pgx.NamedArgs{
		"trip_id":     link.TripID,
		"url":         link.URL,
		"title":       link.Title,
		"description": link.Description,
		"image":       link.Image,
	}

	result, err := scanLink(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Link{}, fmt.Errorf("repo.LinkRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLinkRepo) GetByID(ctx context.Context, tripID, linkID uuid.UUID) (domain.Link, error) {
	const q = `SELECT ` + linkColumns + ` FROM links WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": linkID, "trip_id": tripID})
	result, err := scanLink(row)
	if err != nil {
		return domain.Link{}, fmt.Errorf("repo.LinkRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgLinkRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	const q = `
		SELECT ` + linkColumns + `
		FROM links
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.LinkRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LinkRepo.ListByTrip: scan: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LinkRepo.ListByTrip: rows: %w", err)
	}
	return links, nil
}

func (r *pgLinkRepo) Delete(ctx context.Context, tripID, linkID uuid.UUID) error {
	const q = `DELETE FROM links WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": linkID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.LinkRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LinkRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanLink maps a single database row into a domain.Link.
func scanLink(s scanner) (domain.Link, error) {
	var (
		l      domain.Link
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &l.URL, &l.Title, &l.Description, &l.Image, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Link{}, domain.ErrNotFound
		}
		return domain.Link{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.TripID = uuid.UUID(tripID.Bytes)
	return l, nil
}
