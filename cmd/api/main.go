package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tododb/tododb-go/internal/config"
	"github.com/tododb/tododb-go/internal/handler"
	"github.com/tododb/tododb-go/internal/middleware"
	"github.com/tododb/tododb-go/internal/repository"
	"github.com/tododb/tododb-go/internal/service"
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

	if cfg.JWTSecret == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := config.NewSecretsManagerClient(ctx)
		if err == nil {
			err = config.ResolveJWTSecret(ctx, &cfg, client)
		}
		cancel()
		if err != nil {
			slog.Error("resolving JWT secret", "secret_id", cfg.JWTSecretID, "error", err)
			os.Exit(1)
		}
	}

	if cfg.MigrateOnStart {
		if err := repository.Migrate(cfg.DBDriver, cfg.DatabaseDSN); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
	}

	db, err := repository.NewDB(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	todoService := service.NewTodoService(repository.NewTodoRepository(db))
	authService := service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)

	limitCtx, stopLimit := context.WithCancel(context.Background())
	defer stopLimit()

	router := handler.NewRouter(
		handler.NewTodoHandler(todoService),
		handler.NewAuthHandler(authService),
		middleware.RateLimit(limitCtx, cfg.AuthRateLimit, cfg.AuthRateBurst),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "db_driver", cfg.DBDriver)
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
