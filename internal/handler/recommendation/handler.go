package recommendation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/volunteerhub/motivator/backend/internal/model/recommendation"
	recommendationService "github.com/volunteerhub/motivator/backend/internal/service/recommendation"
	"github.com/volunteerhub/motivator/backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

// Handler serves initiative recommendations.
type Handler struct {
	svc *recommendationService.Service
}

// New creates the handler. svc may be nil when no provider is configured.
func New(svc *recommendationService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the recommendation route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-recommendations", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "recommendations unavailable: AI provider not configured")
		return
	}

	var payload model.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		utils.RespondErrorDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	recs, err := h.svc.Generate(r.Context(), payload)
	if err != nil {
		log.Printf("[recommendation] generate failed: %v", err)
		status, message := classify(err)
		utils.RespondErrorDetails(w, status, message, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, model.Response{Recommendations: recs})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, recommendationService.ErrInvalidAnswers):
		return http.StatusBadRequest, "Invalid answers"
	case errors.Is(err, recommendationService.ErrProviderUnreachable):
		return http.StatusInternalServerError, "Cannot reach AI provider"
	case errors.Is(err, recommendationService.ErrInvalidFormat):
		return http.StatusInternalServerError, "Failed to parse AI response"
	default:
		return http.StatusInternalServerError, "Failed to generate recommendations"
	}
}
