package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// handleStream serves the live trip feed over Server-Sent Events. The
// client receives one snapshot event immediately, then one per committed
// write to the trip. The subscription ends when the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, errors.New("streaming unsupported"), "")
		return
	}

	ch, err := s.feed.Subscribe(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snap := range ch {
		data, err := json.Marshal(snap)
		if err != nil {
			slog.Error("marshal snapshot", "trip_id", tripID, "error", err)
			continue
		}
		fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
		flusher.Flush()
	}
}
