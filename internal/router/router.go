package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tealedge/portal/internal/middleware/metrics"
	"github.com/tealedge/portal/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Auth routes
		r.Post("/auth/signup", h.Signup)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		// Anonymous reads
		r.Get("/courses", h.GetCourses)

		// Snapshot renders for whoever the token says you are,
		// including nobody at all
		r.With(authMw.OptionalAuth()).Get("/snapshot", h.GetSnapshot)

		// Logged-in routes
		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Get("/me", h.GetMe)
			r.Get("/me/enrollments", h.GetMyEnrollments)
			r.Get("/me/stats", h.GetMyStats)
			r.Post("/courses/{course}/enroll", h.Enroll)
			r.Post("/courses/{course}/assignments/{assignment}/toggle", h.ToggleAssignment)
			r.Post("/transition", h.BeginTransition)
			r.Delete("/transition", h.CompleteTransition)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMw.AdminOnly())
			r.Get("/courses/{course}/enrollment_count", h.GetEnrollmentCount)
			r.Get("/admin/stats", h.GetAdminStats)
		})
	})

	// preflight fallback so CORS never 404s
	r.MethodFunc(http.MethodOptions, "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
