package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/volunteerhub/motivator/backend/internal/config"
	motivationService "github.com/volunteerhub/motivator/backend/internal/service/motivation"
)

func newTestRouter() http.Handler {
	svc := motivationService.NewService(nil, motivationService.Config{Provider: "Groq", Model: "llama-3.1-8b-instant"})
	return NewRouter(config.CORSConfig{AllowedOrigins: []string{"*"}}, svc, nil)
}

func TestRouterServesRoutesWithCORS(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/get_motivation", strings.NewReader(`{"points": 250}`))
	req.Header.Set("Origin", "https://volunteer.example")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Amazing work! Inspire others!") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://volunteer.example" {
		t.Fatalf("unexpected allow-origin: %q", got)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/get_motivation", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}

func TestRouterRecommendationsUnavailableWithoutProvider(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/generate-recommendations", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
