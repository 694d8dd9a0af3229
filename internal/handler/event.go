package handler

import (
	"net/http"

	"travelbook/internal/domain"
)

// eventPayload is the request body for creating and updating events.
// Times are "HH:MM" grid strings; an empty end_time reads as start plus
// one hour.
type eventPayload struct {
	Name    string   `json:"name"`
	TagID   string   `json:"tag_id"`
	Day     int      `json:"day"`
	Time    string   `json:"time"`
	EndTime string   `json:"end_time,omitempty"`
	Content string   `json:"content,omitempty"`
	Images  []string `json:"images,omitempty"`
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var payload eventPayload
	if err := decodeJSON(r, &payload); err != nil {
		badRequest(w, err.Error())
		return
	}

	ev, err := s.events.Create(r.Context(), domain.Event{
		TripID:  tripID,
		Name:    payload.Name,
		TagID:   payload.TagID,
		Day:     payload.Day,
		Time:    payload.Time,
		EndTime: payload.EndTime,
		Content: payload.Content,
		Images:  payload.Images,
	})
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	events, err := s.events.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	ev, err := s.events.GetByID(r.Context(), tripID, eventID)
	if err != nil {
		respondError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var payload eventPayload
	if err := decodeJSON(r, &payload); err != nil {
		badRequest(w, err.Error())
		return
	}

	ev, err := s.events.Update(r.Context(), domain.Event{
		ID:      eventID,
		TripID:  tripID,
		Name:    payload.Name,
		TagID:   payload.TagID,
		Day:     payload.Day,
		Time:    payload.Time,
		EndTime: payload.EndTime,
		Content: payload.Content,
		Images:  payload.Images,
	})
	if err != nil {
		respondError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// handleRescheduleEvent commits a drag drop: the event moves to the target
// cell with its duration preserved.
func (s *Server) handleRescheduleEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var body struct {
		Day  int `json:"day"`
		Hour int `json:"hour"`
	}
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	ev, err := s.events.Reschedule(r.Context(), tripID, eventID, body.Day, body.Hour)
	if err != nil {
		respondError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// handleSetEventEnd commits a resize release: a single end_time write.
func (s *Server) handleSetEventEnd(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var body struct {
		EndTime string `json:"end_time"`
	}
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	ev, err := s.events.SetEndTime(r.Context(), tripID, eventID, body.EndTime)
	if err != nil {
		respondError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// handleCreateEventFromLink commits a link drop onto a grid cell.
func (s *Server) handleCreateEventFromLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body struct {
		LinkID string `json:"link_id"`
		Day    int    `json:"day"`
		Hour   int    `json:"hour"`
	}
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}
	linkID, err := parseUUID(body.LinkID)
	if err != nil {
		badRequest(w, "invalid link_id")
		return
	}

	ev, err := s.events.CreateFromLink(r.Context(), tripID, linkID, body.Day, body.Hour)
	if err != nil {
		respondError(w, err, "link not found")
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	if err := s.events.Delete(r.Context(), tripID, eventID); err != nil {
		respondError(w, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
