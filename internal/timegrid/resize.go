package timegrid

import (
	"github.com/google/uuid"

	"travelbook/internal/domain"
)

// ResizePreview is the transient end time shown while a resize gesture is
// in progress. It is distinct from the persisted value: the grid renders
// from it, but nothing is written until the gesture releases.
type ResizePreview struct {
	EventID         uuid.UUID `json:"event_id"`
	DurationMinutes int       `json:"duration_minutes"`
	EndTime         string    `json:"end_time"`
}

// ResizeSession is one pointer-driven resize gesture on an event's bottom
// edge. The session is an explicit object rather than ambient listener
// state: the caller creates it on pointer-down, feeds it every move, and
// releases it exactly once on pointer-up, so cleanup is structural.
//
// Only the end time is ever affected; the start is immutable under this
// gesture. There is no resize-from-top affordance.
type ResizeSession struct {
	eventID          uuid.UUID
	startMinutes     int
	originalDuration int
	pointerStartY    int
	preview          *ResizePreview
}

// StartResize begins a resize gesture at the given pointer Y position,
// capturing the event's identity and effective duration at press time.
func StartResize(ev domain.Event, pointerY int) *ResizeSession {
	return &ResizeSession{
		eventID:          ev.ID,
		startMinutes:     StartMinutes(ev),
		originalDuration: DurationMinutes(ev),
		pointerStartY:    pointerY,
	}
}

// EventID returns the identity of the event being resized.
func (s *ResizeSession) EventID() uuid.UUID {
	return s.eventID
}

// Move updates the preview for the current pointer position and returns
// it. One pixel of travel is one minute of duration. The duration is
// floored at MinEventMinutes and the end is clamped to 23:59 of the
// event's day. For starts within the last quarter hour the two conflict
// and the clamp wins: the preview stays short of the floor rather than
// wrapping past midnight to an end that reads earlier than the start.
// The visual floor in EventBox keeps such slivers legible.
func (s *ResizeSession) Move(pointerY int) ResizePreview {
	deltaY := pointerY - s.pointerStartY
	duration := s.originalDuration + deltaY
	if duration < MinEventMinutes {
		duration = MinEventMinutes
	}
	if s.startMinutes+duration > MinutesPerDay-1 {
		duration = MinutesPerDay - 1 - s.startMinutes
	}
	s.preview = &ResizePreview{
		EventID:         s.eventID,
		DurationMinutes: duration,
		EndTime:         MinutesToTime(s.startMinutes + duration),
	}
	return *s.preview
}

// Preview returns the current preview, or nil when the pointer has not
// moved since the gesture started.
func (s *ResizeSession) Preview() *ResizePreview {
	return s.preview
}

// Release ends the gesture. When a preview exists it is returned for the
// caller to commit as a single endTime-only write; a release with no
// preceding move returns nil and the gesture is a no-op cancellation.
// Either way the session is spent — the preview is cleared so a stale
// session can never re-commit.
func (s *ResizeSession) Release() *ResizePreview {
	p := s.preview
	s.preview = nil
	return p
}
