package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/resort-crew/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger     *log.Logger
	moderation adminapp.ModerationService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger     *log.Logger
	Moderation adminapp.ModerationService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		logger:     logger,
		moderation: cfg.Moderation,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/jobs", h.jobListHandler())
	r.Get("/jobs/{id}", h.jobDetailHandler())
	r.Patch("/jobs/{id}", h.jobModerateHandler())
}
