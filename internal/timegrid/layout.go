package timegrid

import (
	"time"

	"travelbook/internal/domain"
)

// Box is the absolute pixel geometry of one event on its day column.
// TopPx equals the start time in minutes; HeightPx equals the effective
// duration, floored at MinEventMinutes. The floor is purely visual and
// never mutates stored data.
type Box struct {
	TopPx    int `json:"top_px"`
	HeightPx int `json:"height_px"`
}

// EventBox computes the geometry for an event. When preview belongs to
// this event (an in-progress resize), the previewed end time replaces the
// stored one so the grid tracks the pointer without any store write.
func EventBox(ev domain.Event, preview *ResizePreview) Box {
	start := StartMinutes(ev)
	end := EndMinutes(ev)
	if preview != nil && preview.EventID == ev.ID {
		end = TimeToMinutes(preview.EndTime)
	}
	height := end - start
	if height < MinEventMinutes {
		height = MinEventMinutes
	}
	return Box{TopPx: start, HeightPx: height}
}

// EventsForDay filters events to the given 1-based day column. Events on
// other days are excluded entirely, including days beyond the trip's
// current day count — those stay in storage but have no column to render in.
func EventsForDay(events []domain.Event, day int) []domain.Event {
	out := []domain.Event{}
	for _, ev := range events {
		if ev.Day == day {
			out = append(out, ev)
		}
	}
	return out
}

// CellDefaults returns the prefill values for the creation form when an
// empty grid cell is clicked: the cell's hour-rounded start and a default
// one-hour end.
func CellDefaults(hour int) (start, end string) {
	start = FormatTimeFromHour(float64(hour))
	end = MinutesToTime(TimeToMinutes(start) + DefaultEventMinutes)
	return start, end
}

// DayLabels returns the column headers for all days of a trip.
func DayLabels(start *time.Time, days int) []string {
	labels := make([]string, days)
	for i := range labels {
		labels[i] = DisplayDateLabel(start, i)
	}
	return labels
}
