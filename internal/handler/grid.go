package handler

import (
	"net/http"

	"travelbook/internal/domain"
	"travelbook/internal/timegrid"
)

// gridResponse is the precomputed grid layout for one trip: one column
// per day with its header label and each event's pixel box and resolved
// tag color, plus the per-hour creation prefills shared by every column.
type gridResponse struct {
	HourRowPx int        `json:"hour_row_px"`
	Cells     []gridCell `json:"cells"`
	Days      []gridDay  `json:"days"`
}

// gridCell is the creation-form prefill for one empty hour cell.
type gridCell struct {
	Hour  int    `json:"hour"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type gridDay struct {
	Day    int         `json:"day"`
	Label  string      `json:"label"`
	Events []gridEvent `json:"events"`
}

type gridEvent struct {
	Event domain.Event        `json:"event"`
	Box   timegrid.Box        `json:"box"`
	Color domain.PaletteColor `json:"color"`
}

// handleGetGrid returns the trip's events laid out as pixel boxes, one
// column per day. Clients that do not run the layout engine themselves
// can render straight from this.
func (s *Server) handleGetGrid(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	events, err := s.events.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}

	labels := timegrid.DayLabels(trip.StartDate, trip.Days)
	resp := gridResponse{
		HourRowPx: timegrid.HourRowPx,
		Cells:     make([]gridCell, 0, timegrid.HoursPerDay),
		Days:      make([]gridDay, 0, trip.Days),
	}
	for hour := 0; hour < timegrid.HoursPerDay; hour++ {
		start, end := timegrid.CellDefaults(hour)
		resp.Cells = append(resp.Cells, gridCell{Hour: hour, Start: start, End: end})
	}
	for day := 1; day <= trip.Days; day++ {
		col := gridDay{Day: day, Label: labels[day-1], Events: []gridEvent{}}
		for _, ev := range timegrid.EventsForDay(events, day) {
			col.Events = append(col.Events, gridEvent{
				Event: ev,
				Box:   timegrid.EventBox(ev, nil),
				Color: domain.ColorForTag(trip.Tags, ev.TagID),
			})
		}
		resp.Days = append(resp.Days, col)
	}
	writeJSON(w, http.StatusOK, resp)
}
