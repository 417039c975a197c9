package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/volunteerhub/motivator/backend/internal/config"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestProvider(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *ChatProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider, err := NewChatProvider(context.Background(), config.AIConfig{
		Provider: "Groq",
		APIKey:   "test-key",
		Model:    "llama-3.1-8b-instant",
		BaseURL:  srv.URL,
		Timeout:  timeout,
	})
	if err != nil {
		t.Fatalf("NewChatProvider err: %v", err)
	}
	return provider
}

func writeCompletion(w http.ResponseWriter, contents ...string) {
	choices := make([]map[string]any, 0, len(contents))
	for i, content := range contents {
		choices = append(choices, map[string]any{
			"index":         i,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "llama-3.1-8b-instant",
		"choices": choices,
	})
}

func TestNewChatProviderRequiresKey(t *testing.T) {
	if _, err := NewChatProvider(context.Background(), config.AIConfig{Model: "m"}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestCompleteSendsPayload(t *testing.T) {
	var got capturedRequest
	var auth, path string

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		writeCompletion(w, "You are doing great.", "ignored")
	}, time.Second)

	text, err := provider.Complete(context.Background(), "system text", "user text", Params{
		MaxTokens:   80,
		Temperature: 0.9,
		TopP:        0.95,
	})
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}

	if text != "You are doing great." {
		t.Fatalf("unexpected text: %q", text)
	}
	if auth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", auth)
	}
	if path != "/chat/completions" {
		t.Fatalf("unexpected path: %s", path)
	}
	if got.Model != "llama-3.1-8b-instant" || got.MaxTokens != 80 || got.Temperature != 0.9 || got.TopP != 0.95 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
	if got.Messages[0].Content != "system text" || got.Messages[1].Content != "user text" {
		t.Fatalf("unexpected message content: %+v", got.Messages)
	}
}

func TestCompleteModelOverride(t *testing.T) {
	var got capturedRequest
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		writeCompletion(w, "ok")
	}, time.Second)

	if _, err := provider.Complete(context.Background(), "s", "u", Params{Model: "mixtral-8x7b-32768"}); err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if got.Model != "mixtral-8x7b-32768" {
		t.Fatalf("expected override model, got %s", got.Model)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w)
	}, time.Second)

	_, err := provider.Complete(context.Background(), "s", "u", Params{})
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestCompleteReturnsBlankContent(t *testing.T) {
	for _, content := range []string{"", "   "} {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeCompletion(w, content)
		}, time.Second)

		text, err := provider.Complete(context.Background(), "s", "u", Params{})
		if err != nil {
			t.Fatalf("content %q: Complete err: %v", content, err)
		}
		if text != content {
			t.Fatalf("content %q: got %q", content, text)
		}
	}
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
	}, time.Second)

	_, err := provider.Complete(context.Background(), "s", "u", Params{})
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.Op != "complete" {
		t.Fatalf("unexpected op: %s", providerErr.Op)
	}
}

func TestCompleteTimeout(t *testing.T) {
	release := make(chan struct{})
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	start := time.Now()
	_, err := provider.Complete(context.Background(), "s", "u", Params{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %s", elapsed)
	}
}

func TestPing(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[{"id":"llama-3.1-8b-instant","object":"model"}]}`))
	}, time.Second)

	if err := provider.Ping(context.Background()); err != nil {
		t.Fatalf("Ping err: %v", err)
	}
}

func TestPingFailure(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, time.Second)

	var providerErr *ProviderError
	if err := provider.Ping(context.Background()); !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}
