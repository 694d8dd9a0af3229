// Package timegrid implements the time-grid interaction core: conversions
// between "HH:MM" wall-clock strings and minute offsets, pixel geometry
// for the day/hour grid, and the drag and resize gesture sessions.
//
// Everything here is pure: sessions take state in and hand new state out,
// and the only side effects (store writes) happen in the service layer
// after a session commits. The grid is scaled at exactly one vertical
// pixel per minute so pixel-space and time-space arithmetic are the same
// operation, which removes a whole class of rounding bugs by construction.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"travelbook/internal/domain"
)

const (
	// HoursPerDay is the number of hour rows on the grid.
	HoursPerDay = 24
	// MinutesPerDay is 24 hours expressed in minutes.
	MinutesPerDay = 1440
	// HourRowPx is the rendered height of one hour row. With one pixel
	// per minute this is necessarily 60.
	HourRowPx = 60
	// MinEventMinutes is the floor for both rendered height and resized
	// duration. Events shorter than this still occupy 15 visual minutes.
	MinEventMinutes = 15
	// DefaultEventMinutes is the duration assumed when an event has no
	// end time, and the duration given to events created from link drops
	// or empty-cell clicks.
	DefaultEventMinutes = 60
)

// weekDays is indexed by time.Weekday (0 = Sunday).
var weekDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// TimeToMinutes converts an "HH:MM" string to minutes from midnight.
// An empty string yields 0. The input is not range-checked; callers own
// well-formedness, matching the forms that only emit valid times.
func TimeToMinutes(t string) int {
	if t == "" {
		return 0
	}
	h, m, _ := strings.Cut(t, ":")
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	return hour*60 + minute
}

// MinutesToTime converts minutes from midnight to an "HH:MM" string.
// The hour component wraps mod 24 so values past 1440 render as an
// earlier clock time. Gesture sessions clamp before calling this, so
// stored times never actually wrap; the mod only matters for labels.
func MinutesToTime(minutes int) string {
	h := (minutes / 60) % HoursPerDay
	m := minutes % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatTimeFromHour renders an hour row index as its "HH:00" start time.
// Fractional hours are truncated, not rounded.
func FormatTimeFromHour(hour float64) string {
	return fmt.Sprintf("%02d:00", int(hour))
}

// DisplayDateLabel returns the column header for a day offset from the
// trip's start date, formatted "M/D (weekday)". A trip without a start
// date falls back to "Day N".
func DisplayDateLabel(start *time.Time, dayOffset int) string {
	if start == nil {
		return fmt.Sprintf("Day %d", dayOffset+1)
	}
	d := start.AddDate(0, 0, dayOffset)
	return fmt.Sprintf("%d/%d (%s)", int(d.Month()), d.Day(), weekDays[d.Weekday()])
}

// StartMinutes returns the event's start as minutes from midnight.
func StartMinutes(ev domain.Event) int {
	return TimeToMinutes(ev.Time)
}

// EndMinutes returns the event's stored end as minutes from midnight,
// defaulting to start plus one hour when no end time is stored. Every
// reader of EndTime goes through this.
func EndMinutes(ev domain.Event) int {
	if ev.EndTime == "" {
		return TimeToMinutes(ev.Time) + DefaultEventMinutes
	}
	return TimeToMinutes(ev.EndTime)
}

// DurationMinutes returns the event's effective duration.
func DurationMinutes(ev domain.Event) int {
	return EndMinutes(ev) - StartMinutes(ev)
}
