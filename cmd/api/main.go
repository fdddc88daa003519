package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/vocabulary"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	words, err := vocabulary.Resolve(cfg.VocabularyPath, vocabulary.LoadOptions{
		MinWordLength: cfg.VocabularyMinWordLength,
		MaxWordLength: cfg.VocabularyMaxWordLength,
		LettersOnly:   true,
	})
	if err != nil {
		slog.Error("loading vocabulary failed", "path", cfg.VocabularyPath, "error", err)
		os.Exit(1)
	}

	genService := service.NewGeneratorService(words, service.Limits{
		MaxLength: cfg.MaxPasswordLength,
		MaxWords:  cfg.MaxWords,
	})
	genHandler := handler.NewGeneratorHandler(genService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger("passgen-api", cfg.Env))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthEnabled() {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
		} else {
			slog.Warn("JWT_SECRET not set, API is unauthenticated")
		}

		r.Get("/generators", genHandler.HandleListGenerators)
		r.With(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)).
			Post("/generate", genHandler.HandleGenerate)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "auth", cfg.AuthEnabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
