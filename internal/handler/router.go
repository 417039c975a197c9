package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/volunteerhub/motivator/backend/internal/config"
	"github.com/volunteerhub/motivator/backend/internal/handler/motivation"
	"github.com/volunteerhub/motivator/backend/internal/handler/recommendation"
	middlewarePkg "github.com/volunteerhub/motivator/backend/internal/middleware"
	motivationService "github.com/volunteerhub/motivator/backend/internal/service/motivation"
	recommendationService "github.com/volunteerhub/motivator/backend/internal/service/recommendation"
)

// NewRouter wires HTTP routes to core services. recommendationSvc may be nil.
func NewRouter(corsCfg config.CORSConfig, motivationSvc *motivationService.Service, recommendationSvc *recommendationService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(corsCfg))

	motivation.New(motivationSvc).RegisterRoutes(r)
	recommendation.New(recommendationSvc).RegisterRoutes(r)

	return r
}
