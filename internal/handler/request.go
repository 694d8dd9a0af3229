package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"

	"travelbook/internal/domain"
)

// pathUUID parses a UUID route parameter. On failure it writes a 400 and
// returns ok=false; the handler must return immediately.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		badRequest(w, fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// parseUUID parses a UUID carried in a request body field.
func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// decodeJSON reads the request body into v. Unknown fields are ignored,
// matching the lenient decoding of the rest of the API.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// tripPayload is the request body for creating and updating trips.
// start_date is a calendar date ("2024-05-01"); omit it for an undated
// trip whose columns label as "Day N".
type tripPayload struct {
	Name       string       `json:"name"`
	StartDate  *types.Date  `json:"start_date,omitempty"`
	Days       int          `json:"days"`
	Tags       []domain.Tag `json:"tags,omitempty"`
	CoverImage string       `json:"cover_image,omitempty"`
}

func (p tripPayload) toDomain(id uuid.UUID) domain.Trip {
	trip := domain.Trip{
		ID:         id,
		Name:       p.Name,
		Days:       p.Days,
		Tags:       p.Tags,
		CoverImage: p.CoverImage,
	}
	if p.StartDate != nil {
		d := p.StartDate.Time
		trip.StartDate = &d
	}
	return trip
}

// tripResponse mirrors domain.Trip with start_date rendered as a calendar
// date rather than a full timestamp.
type tripResponse struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	StartDate  *types.Date  `json:"start_date,omitempty"`
	Days       int          `json:"days"`
	Tags       []domain.Tag `json:"tags"`
	CoverImage string       `json:"cover_image,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func toTripResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:         t.ID,
		Name:       t.Name,
		Days:       t.Days,
		Tags:       t.Tags,
		CoverImage: t.CoverImage,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []domain.Tag{}
	}
	if t.StartDate != nil {
		resp.StartDate = &types.Date{Time: *t.StartDate}
	}
	return resp
}

func toTripResponses(trips []domain.Trip) []tripResponse {
	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	return out
}
