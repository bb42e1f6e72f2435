package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/sngm3741/resort-crew/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger   *log.Logger
	listings publicapp.ListingQueryService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger   *log.Logger
	Listings publicapp.ListingQueryService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		logger:   logger,
		listings: cfg.Listings,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/jobs", h.jobListHandler())
	r.Get("/jobs/{id}", h.jobDetailHandler())
	r.Get("/employers/{id}/reviews/summary", h.reviewSummaryHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}
