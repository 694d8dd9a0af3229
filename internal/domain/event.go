package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single timed item on one day/time slot of a trip's grid.
//
// Time and EndTime are wall-clock "HH:MM" strings; the grid works in
// minutes-from-midnight, so string parsing happens in exactly one place
// (timegrid). EndTime may be empty — everywhere it is read it is treated
// as Time plus 60 minutes. The endTime-after-time invariant is enforced
// by the service before commit, never by storage.
type Event struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	TagID     string    `json:"tag_id,omitempty"` // weak reference into Trip.Tags; may dangle
	Day       int       `json:"day"`              // 1-based column index
	Time      string    `json:"time"`             // "HH:MM" start
	EndTime   string    `json:"end_time,omitempty"`
	Content   string    `json:"content,omitempty"`
	Images    []string  `json:"images"` // inline data URLs, each capped at MaxImageBytes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventPatch carries a partial event update. Nil fields are left
// untouched. The resize commit path only ever sets EndTime; the drag
// commit path sets Day, Time, and EndTime together.
type EventPatch struct {
	Day     *int
	Time    *string
	EndTime *string
}
