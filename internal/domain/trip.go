// Package domain contains the core data types for the travel planner.
// This package has zero dependencies beyond uuid and is imported by every
// other internal package (timegrid, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxImageBytes is the ceiling for a single inline image blob.
// Images are stored as data URLs directly inside documents, so oversized
// uploads are rejected before they ever reach the store.
const MaxImageBytes = 500 * 1024

// Trip is the top-level aggregate: a grid of Days columns starting at
// StartDate, with an embedded ordered tag list and an optional cover image.
// Events and links belong to a trip and are deleted with it.
type Trip struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	StartDate  *time.Time `json:"start_date,omitempty"` // nil when the trip has no fixed date yet
	Days       int        `json:"days"`                 // always >= 1
	Tags       []Tag      `json:"tags"`                 // ordered; IDs unique within the trip
	CoverImage string     `json:"cover_image,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FirstTagID returns the ID of the trip's first tag, or "" when the trip
// has none. Link drops and the creation form default to this tag.
func (t Trip) FirstTagID() string {
	if len(t.Tags) == 0 {
		return ""
	}
	return t.Tags[0].ID
}

// HasTag reports whether a tag with the given ID is already present.
// Tag identity is the ID alone; names are free to collide.
func (t Trip) HasTag(id string) bool {
	for _, tag := range t.Tags {
		if tag.ID == id {
			return true
		}
	}
	return false
}
