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
	"github.com/joho/godotenv"
	"github.com/passcheck/passcheck-go/internal/config"
	"github.com/passcheck/passcheck-go/internal/handler"
	"github.com/passcheck/passcheck-go/internal/middleware"
	"github.com/passcheck/passcheck-go/internal/repository"
	"github.com/passcheck/passcheck-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// Evaluation stats are optional: without a database the API still
	// evaluates and generates, it just records nothing.
	var statsRepo *repository.StatsRepository
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — evaluation stats disabled", "error", err)
	} else {
		statsRepo = repository.NewStatsRepository(db)
	}

	var recorder service.StatsRecorder
	if statsRepo != nil {
		recorder = statsRepo
	}

	strengthService := service.NewStrengthService(recorder)
	strengthHandler := handler.NewStrengthHandler(strengthService)

	genService := service.NewGeneratorService()
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	registerAPI := func(r chi.Router) {
		r.Post("/api/v1/evaluate", strengthHandler.HandleEvaluate)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		if statsRepo != nil {
			statsHandler := handler.NewStatsHandler(statsRepo)
			r.Get("/api/v1/stats", statsHandler.HandleStats)
		}
	}

	if cfg.APIKeyHash == "" {
		slog.Warn("API_KEY_HASH not set — running without authentication")
		registerAPI(r)
	} else {
		authService := service.NewAuthService(cfg.APIKeyHash, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/token", authHandler.HandleToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(cfg.JWTSecret))
			registerAPI(r)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
