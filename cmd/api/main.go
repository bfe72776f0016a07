package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaekwang-park/todo-board/internal/config"
	todohttp "github.com/jaekwang-park/todo-board/internal/http"
	"github.com/jaekwang-park/todo-board/internal/middleware"
	"github.com/jaekwang-park/todo-board/internal/repository"
	"github.com/jaekwang-park/todo-board/internal/service"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

type storage struct {
	todos      repository.TodoRepository
	categories repository.CategoryRepository
	// resetter is set only for the in-memory store.
	resetter *repository.MemoryStore
	db       *sql.DB
}

func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (storage, error) {
	if cfg.StorageDriver == config.StorageMemory {
		store := repository.NewMemoryStore()
		logger.Info("using in-memory storage with seed data")
		return storage{todos: store.Todos(), categories: store.Categories(), resetter: store}, nil
	}

	db, err := repository.NewDB(cfg.DB.DSN())
	if err != nil {
		return storage{}, err
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return storage{}, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "name", cfg.DB.Name)

	return storage{
		todos:      repository.NewPostgresTodo(db),
		categories: repository.NewPostgresCategory(db),
		db:         db,
	}, nil
}

func newAuth(cfg config.Config) (*middleware.Auth, error) {
	if cfg.Auth.Mode != config.AuthModeJWT {
		return nil, nil
	}
	auth, err := middleware.NewAuth(middleware.AuthConfig{
		JWKSClient: middleware.NewJWKSClient(cfg.Auth.JWKSURL),
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth middleware: %w", err)
	}
	return auth, nil
}

func run(ctx context.Context) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"storage", cfg.StorageDriver,
		"auth_mode", cfg.Auth.Mode,
		"log_level", cfg.LogLevel,
	)

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if store.db != nil {
		defer store.db.Close()
	}

	deps := todohttp.RouterDeps{
		Todos:      service.NewTodoService(store.todos, store.categories),
		Categories: service.NewCategoryService(store.categories),
	}
	if store.resetter != nil && cfg.IsLocal() {
		deps.Resetter = store.resetter
		logger.Info("admin reset endpoint enabled")
	}

	auth, err := newAuth(cfg)
	if err != nil {
		return err
	}

	srv := todohttp.NewServer(todohttp.ServerConfig{
		Port: cfg.ServerPort,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowAnyOrigin: cfg.IsLocal(),
		},
		Auth: auth,
	}, logger, deps)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
