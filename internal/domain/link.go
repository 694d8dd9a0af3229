package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a saved external URL with fetched preview metadata. Links are
// pure drag sources: dropping one on the grid produces an Event, and no
// back-reference is kept, so deleting a link never touches events made
// from it.
type Link struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"` // remote preview URL, not inlined
	CreatedAt   time.Time `json:"created_at"`
}
