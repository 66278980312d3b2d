package setup

import (
	"github.com/tealedge/portal/internal/config"
	"github.com/tealedge/portal/internal/handler"
	"github.com/tealedge/portal/internal/jwt"
	"github.com/tealedge/portal/internal/middleware"
	"github.com/tealedge/portal/internal/service"
	"github.com/tealedge/portal/internal/storage/memory"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Portal         *service.Portal
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes everything the portal needs. The
// ledgers are plain in-memory stores owned here and injected down,
// never ambient singletons.
func SetupDependencies(cfg *config.Config) *Dependencies {
	courses := memory.DefaultCourses()
	if cfg.Public.CoursesFile != "" {
		courses = config.MustLoadCourses(cfg.Public.CoursesFile)
	}

	catalog := memory.NewCatalog(courses)
	accounts := memory.NewAccountLedger()
	enrollments := memory.NewEnrollmentLedger()

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(accounts, jwtService, cfg.AdminSignupKey(), cfg.Public.AdminEmailDomain)
	enrollment := service.NewEnrollment(enrollments, catalog)
	portal := service.NewPortal(auth, enrollment, catalog)

	h := handler.New(portal, cfg)
	authMw := middleware.NewAuth(jwtService, cfg.Public.SecureCookies)

	return &Dependencies{
		Config:         cfg,
		Portal:         portal,
		Handler:        h,
		AuthMiddleware: authMw,
	}
}
