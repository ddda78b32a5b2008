package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/nldigest/pkg/domain"
)

// streamHandler summarizes the given newsletters into an edition and streams
// each result as a server-sent event. The last event has type "complete".
func (s *Server) streamHandler(w http.ResponseWriter, r *http.Request) {
	editionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid edition ID"), http.StatusBadRequest)
		return
	}
	ids, err := parseIDs(r.URL.Query().Get("newsletterIds"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if _, err := s.db.GetEdition(r.Context(), editionID); err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}

	rc := http.NewResponseController(w)
	extendWriteDeadline(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_ = rc.Flush()

	emit := func(ev domain.StreamEvent) {
		data, err := json.Marshal(ev)
		if err != nil {
			lgr.Printf("[ERROR] can't marshal stream event: %v", err)
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			lgr.Printf("[DEBUG] stream client gone: %v", err)
			return
		}
		if err := rc.Flush(); err != nil {
			lgr.Printf("[DEBUG] can't flush stream: %v", err)
		}
	}

	lgr.Printf("[INFO] streaming %d newsletters into edition %d", len(ids), editionID)
	if err := s.streamer.Stream(r.Context(), editionID, ids, emit); err != nil {
		lgr.Printf("[WARN] stream for edition %d stopped: %v", editionID, err)
	}
}

// parseIDs parses a comma separated list of positive ids
func parseIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("newsletterIds is required")
	}
	parts := strings.Split(raw, ",")
	res := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid newsletter id %q", p)
		}
		res = append(res, id)
	}
	if len(res) == 0 {
		return nil, errors.New("newsletterIds is required")
	}
	return res, nil
}
