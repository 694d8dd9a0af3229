package handler

import "net/http"

func (s *Server) handleAddLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body struct {
		URL   string `json:"url"`
		Title string `json:"title,omitempty"`
	}
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	link, err := s.links.Add(r.Context(), tripID, body.URL, body.Title)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	linkID, ok := pathUUID(w, r, "linkID")
	if !ok {
		return
	}

	if err := s.links.Delete(r.Context(), tripID, linkID); err != nil {
		respondError(w, err, "link not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
