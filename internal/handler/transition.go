package handler

import (
	"net/http"
	"time"
)

// The boarding transition endpoints only flip the transient flag in the
// snapshot. An optional delay_ms query schedules the completion server
// side; without it the presentation layer owns the timing and calls
// the DELETE endpoint itself.

func (h *Handler) BeginTransition(w http.ResponseWriter, r *http.Request) {
	var delay time.Duration
	if raw := r.URL.Query().Get("delay_ms"); raw != "" {
		ms, err := parseIntParam(raw, "delay_ms")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		delay = time.Duration(ms) * time.Millisecond
	}

	writeJSON(w, h.portal.BeginTransition(delay))
}

func (h *Handler) CompleteTransition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.portal.CompleteTransition())
}
