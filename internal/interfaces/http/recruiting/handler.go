package recruiting

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
)

// Handler exposes the application lifecycle and notification inbox.
type Handler struct {
	logger        *log.Logger
	applications  recruitingapp.ApplicationService
	notifications recruitingapp.NotificationService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	Applications  recruitingapp.ApplicationService
	Notifications recruitingapp.NotificationService
}

// NewHandler constructs the recruiting handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		logger:        logger,
		applications:  cfg.Applications,
		notifications: cfg.Notifications,
	}
}

// Register mounts the recruiting routes. Every route requires authentication;
// employer routes additionally require the employer role.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.With(common.RequireRole(common.RoleJobseeker)).Post("/jobs/{id}/applications", h.applicationSubmitHandler())
		r.With(common.RequireRole(common.RoleJobseeker)).Get("/me/applications", h.myApplicationListHandler())
		r.Get("/applications/{id}", h.applicationDetailHandler())
		r.With(common.RequireRole(common.RoleJobseeker)).Patch("/applications/{id}", h.applicationUpdateHandler())

		r.Get("/me/notifications", h.notificationListHandler())
		r.Post("/me/notifications/{id}/read", h.notificationReadHandler())

		r.Route("/employer", func(r chi.Router) {
			r.Use(common.RequireRole(common.RoleEmployer))
			r.Get("/applications", h.employerApplicationListHandler())
			r.Post("/applications/{id}/interview", h.interviewHandler())
			r.Post("/applications/{id}/decision", h.decisionHandler())
			r.Patch("/jobs/{id}/active", h.postingActiveHandler())
		})
	})
}
