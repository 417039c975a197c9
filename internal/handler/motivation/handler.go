package motivation

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/volunteerhub/motivator/backend/internal/model/motivation"
	motivationService "github.com/volunteerhub/motivator/backend/internal/service/motivation"
	"github.com/volunteerhub/motivator/backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

// Handler 激励消息服务的HTTP处理器
type Handler struct {
	svc *motivationService.Service
}

// New 创建激励消息处理器
func New(svc *motivationService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册健康检查与激励消息路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Post("/get_motivation", h.handleGetMotivation)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.svc.Health())
}

// handleGetMotivation 总是返回 200，无法解析的请求体按空对象处理
func (h *Handler) handleGetMotivation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Printf("[motivation] failed to read body, treat as empty: %v", err)
		body = nil
	}

	req, err := model.ParseRequest(body)
	if err != nil {
		log.Printf("[motivation] coercion failed, reset metrics: %v", err)
	}
	log.Printf("[motivation] received points=%d hours=%d streak=%d initiatives=%d", req.Points, req.Hours, req.Streak, req.Initiatives)

	utils.RespondJSON(w, http.StatusOK, h.svc.GetMotivation(r.Context(), req))
}
