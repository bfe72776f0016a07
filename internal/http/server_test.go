package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	todohttp "github.com/jaekwang-park/todo-board/internal/http"
	"github.com/jaekwang-park/todo-board/internal/middleware"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}
	defer l.Close()
	_, port, _ := net.SplitHostPort(l.Addr().String())
	return port
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_StartAndShutdown(t *testing.T) {
	port := freePort(t)
	srv := todohttp.NewServer(todohttp.ServerConfig{Port: port}, discardLogger(), newTestDeps(false))

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected server error: %v", err)
		}
	}()

	// Wait for server to be ready
	addr := fmt.Sprintf("http://localhost:%s/health", port)
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, _ = http.Get(addr)
		if resp != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if resp == nil {
		t.Fatal("server did not start in time")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %s", result["status"])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestServer_MiddlewareChain(t *testing.T) {
	auth, err := middleware.NewAuth(middleware.AuthConfig{
		JWKSClient: middleware.NewJWKSClient("http://127.0.0.1:0/jwks"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv := todohttp.NewServer(todohttp.ServerConfig{
		Port: "0",
		CORS: middleware.CORSConfig{AllowedOrigins: []string{"https://board.example.com"}},
		Auth: auth,
	}, discardLogger(), newTestDeps(false))
	h := srv.Handler()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"health skips auth", http.MethodGet, "/health", http.StatusOK},
		{"api requires token", http.MethodGet, "/api/todos", http.StatusUnauthorized},
		{"preflight answered before auth", http.MethodOptions, "/api/todos", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("Origin", "https://board.example.com")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://board.example.com" {
				t.Errorf("expected CORS header on every response, got %q", got)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected request id header on every response")
			}
		})
	}
}
