package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tealedge/portal/internal/api"
)

func (h *Handler) GetEnrollmentCount(w http.ResponseWriter, r *http.Request) {
	courseId := chi.URLParam(r, "course")
	writeJSON(w, api.EnrollmentCountResponse{
		CourseId: courseId,
		Count:    h.portal.EnrollmentCount(courseId),
	})
}

func (h *Handler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.AdminStatsResponse{Stats: h.portal.AggregateAdminStats()})
}
