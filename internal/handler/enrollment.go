package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tealedge/portal/internal/api"
	"github.com/tealedge/portal/internal/domain"
	mw "github.com/tealedge/portal/internal/middleware"
	"github.com/tealedge/portal/internal/middleware/metrics"
)

func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	caller := mw.GetAccountFromContext(r)
	if caller == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	courseId := chi.URLParam(r, "course")

	snap := h.portal.EnrollAs(caller, courseId)
	metrics.RecordCommand("enroll", false)
	writeJSON(w, snap)
}

func (h *Handler) ToggleAssignment(w http.ResponseWriter, r *http.Request) {
	caller := mw.GetAccountFromContext(r)
	if caller == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	courseId := chi.URLParam(r, "course")
	assignmentId := chi.URLParam(r, "assignment")

	snap := h.portal.ToggleAssignmentAs(caller, courseId, assignmentId)
	metrics.RecordCommand("toggle", false)
	writeJSON(w, snap)
}

func (h *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.CourseListResponse{Courses: h.portal.Courses()})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	caller := mw.GetAccountFromContext(r)
	if caller == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, api.AccountResponse{Name: caller.Name, Email: caller.Email, Role: string(caller.Role)})
}

func (h *Handler) GetMyEnrollments(w http.ResponseWriter, r *http.Request) {
	caller := mw.GetAccountFromContext(r)
	if caller == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	enrollments := h.portal.EnrollmentsFor(caller.Email)
	out := make([]api.EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		out[i] = toEnrollmentResponse(e)
	}
	writeJSON(w, api.EnrollmentListResponse{Enrollments: out})
}

func (h *Handler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	caller := mw.GetAccountFromContext(r)
	if caller == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, api.StatsResponse{Stats: h.portal.StatsFor(caller.Email)})
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.portal.SnapshotFor(mw.GetAccountFromContext(r)))
}

func toEnrollmentResponse(e domain.Enrollment) api.EnrollmentResponse {
	completed := make([]string, 0, len(e.Completed))
	for id := range e.Completed {
		completed = append(completed, id)
	}
	return api.EnrollmentResponse{
		StudentEmail: e.StudentEmail,
		CourseId:     e.CourseId,
		Completed:    completed,
	}
}
