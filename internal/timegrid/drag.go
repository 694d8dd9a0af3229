package timegrid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"travelbook/internal/domain"
)

// ErrMidResize is returned when a drag is started on an event that is
// currently being resized. The two gestures are mutually exclusive per
// event for the lifetime of one pointer interaction.
var ErrMidResize = errors.New("event is mid-resize and cannot be dragged")

// Reschedule is the committed outcome of dropping a dragged event onto a
// grid cell: a new day and a new start, with the original duration
// preserved in the new end time.
type Reschedule struct {
	EventID uuid.UUID `json:"event_id"`
	Day     int       `json:"day"`
	Time    string    `json:"time"`
	EndTime string    `json:"end_time"`
}

// DragSession is one drag gesture on an existing event. Like
// ResizeSession it is an explicit object scoped to a single gesture:
// created on drag start, consumed by Drop, discarded on drag end whether
// or not a drop happened.
type DragSession struct {
	event domain.Event
}

// StartDrag begins dragging an event. It refuses events that are the
// subject of an active resize session.
func StartDrag(ev domain.Event, resizing *ResizeSession) (*DragSession, error) {
	if resizing != nil && resizing.EventID() == ev.ID {
		return nil, ErrMidResize
	}
	return &DragSession{event: ev}, nil
}

// EventID returns the identity of the dragged event.
func (s *DragSession) EventID() uuid.UUID {
	return s.event.ID
}

// Drop computes the reschedule for releasing the drag over the cell at
// (targetDay, targetHour). The new start snaps to the hour boundary and
// the event's effective duration is preserved; an end that would cross
// midnight is clamped to 23:59. The returned event is the optimistic
// local copy — callers apply it to their view immediately and issue the
// remote write after, with no rollback if the write fails.
func (s *DragSession) Drop(targetDay, targetHour int) (Reschedule, domain.Event) {
	start := FormatTimeFromHour(float64(targetHour))
	startMins := TimeToMinutes(start)

	end := startMins + DurationMinutes(s.event)
	if end > MinutesPerDay-1 {
		end = MinutesPerDay - 1
	}

	r := Reschedule{
		EventID: s.event.ID,
		Day:     targetDay,
		Time:    start,
		EndTime: MinutesToTime(end),
	}

	moved := s.event
	moved.Day = r.Day
	moved.Time = r.Time
	moved.EndTime = r.EndTime
	return r, moved
}

// LinkDropDraft synthesizes the event created by dropping a reference
// link onto the cell at (targetDay, targetHour): default one-hour
// duration, the trip's first tag, the link's description plus a source
// attribution line as content, and the link's preview image as the sole
// attachment when present. This is a pure create — the event did not
// exist before, so there is no optimistic step.
func LinkDropDraft(link domain.Link, firstTagID string, targetDay, targetHour int) domain.Event {
	start := FormatTimeFromHour(float64(targetHour))
	startMins := TimeToMinutes(start)

	end := startMins + DefaultEventMinutes
	if end > MinutesPerDay-1 {
		end = MinutesPerDay - 1
	}

	name := link.Title
	if name == "" {
		name = "New linked item"
	}

	ev := domain.Event{
		TripID:  link.TripID,
		Name:    name,
		TagID:   firstTagID,
		Day:     targetDay,
		Time:    start,
		EndTime: MinutesToTime(end),
		Content: fmt.Sprintf("%s\n\nSource: %s", link.Description, link.URL),
		Images:  []string{},
	}
	if link.Image != "" {
		ev.Images = []string{link.Image}
	}
	return ev
}
