package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jaekwang-park/todo-board/internal/middleware"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		inner     http.HandlerFunc
		wantParts []string
	}{
		{
			name: "explicit status",
			path: "/health",
			inner: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantParts: []string{"GET", "/health", "status=200", "level=INFO"},
		},
		{
			name: "implicit 200",
			path: "/implicit",
			inner: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantParts: []string{"/implicit", "status=200", "bytes=2"},
		},
		{
			name: "not found",
			path: "/missing",
			inner: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantParts: []string{"status=404", "level=INFO"},
		},
		{
			name: "server error logged as error",
			path: "/api/todos",
			inner: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantParts: []string{"status=500", "level=ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			h := middleware.RequestID(middleware.Logging(logger)(tt.inner))
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.RequestIDHeader, "req-7")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			logOutput := buf.String()
			if !strings.Contains(logOutput, "request_id=req-7") {
				t.Errorf("expected request id in log, got: %s", logOutput)
			}
			for _, want := range tt.wantParts {
				if !strings.Contains(logOutput, want) {
					t.Errorf("expected log to contain %q, got: %s", want, logOutput)
				}
			}
		})
	}
}
