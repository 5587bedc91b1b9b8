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
	"github.com/passgate/passgate-go/internal/config"
	"github.com/passgate/passgate-go/internal/handler"
	"github.com/passgate/passgate-go/internal/middleware"
	"github.com/passgate/passgate-go/internal/service"
	"github.com/passgate/passgate-go/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	users := newUserStore(cfg)

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	suggestionService := service.NewSuggestionService()
	suggestionHandler := handler.NewSuggestionHandler(suggestionService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/users", authHandler.HandleRegister)
		r.Post("/users/password-suggestion", suggestionHandler.HandleSuggest)
		r.Post("/login/token", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.JWTSecret, users))
		r.Get("/users/profile", authHandler.HandleProfile)
	})

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

// newUserStore selects the user store: MySQL when a DSN is configured, the
// in-memory store otherwise.
func newUserStore(cfg config.Config) store.UserStore {
	if cfg.DatabaseDSN == "" {
		slog.Info("using in-memory user store")
		return store.NewMemoryStore()
	}

	db, err := store.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — falling back to in-memory store", "error", err)
		return store.NewMemoryStore()
	}

	slog.Info("using mysql user store")
	return store.NewMySQLStore(db)
}
