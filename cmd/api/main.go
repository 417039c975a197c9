package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/volunteerhub/motivator/backend/internal/config"
	"github.com/volunteerhub/motivator/backend/internal/handler"
	"github.com/volunteerhub/motivator/backend/internal/service/ai"
	"github.com/volunteerhub/motivator/backend/internal/service/motivation"
	"github.com/volunteerhub/motivator/backend/internal/service/recommendation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Without a provider every motivation request is served from the fallback table.
	var provider ai.Provider
	var recommendationSvc *recommendation.Service
	if cfg.AI.Enabled() {
		chatProvider, err := ai.NewChatProvider(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI provider: %v", err)
		} else {
			provider = chatProvider
			recommendationSvc = recommendation.NewService(provider, cfg.AI.RecommendationModel)
			log.Printf("AI provider %s initialized, model=%s", cfg.AI.Provider, cfg.AI.Model)
		}
	} else {
		log.Println("GROQ_API_KEY not set, motivation falls back to canned messages and recommendations are disabled")
	}

	motivationSvc := motivation.NewService(provider, motivation.Config{
		Provider: cfg.AI.Provider,
		Model:    cfg.AI.Model,
	})

	router := handler.NewRouter(cfg.CORS, motivationSvc, recommendationSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("motivation backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
