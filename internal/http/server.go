package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jaekwang-park/todo-board/internal/middleware"
)

type ServerConfig struct {
	Port string
	CORS middleware.CORSConfig
	// Auth is optional; nil serves every request unauthenticated.
	Auth *middleware.Auth
}

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(cfg ServerConfig, logger *slog.Logger, deps RouterDeps) *Server {
	var h http.Handler = NewRouter(deps)

	// Middleware chain: request id -> recovery -> logging -> cors -> auth -> router
	if cfg.Auth != nil {
		h = cfg.Auth.Middleware(h)
	}
	h = middleware.CORS(cfg.CORS)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(h)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Port),
			Handler:      h,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
