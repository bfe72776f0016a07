package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jaekwang-park/todo-board/internal/http/handler"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		method     string
		wantStatus int
		wantCode   string
	}{
		{http.MethodGet, http.StatusOK, ""},
		{http.MethodPost, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{http.MethodDelete, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			before := time.Now().UTC().Add(-time.Second)
			w := httptest.NewRecorder()

			handler.NewHealthHandler().ServeHTTP(w, httptest.NewRequest(tt.method, "/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			if tt.wantCode != "" {
				var result handler.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Success || result.Error.Code != tt.wantCode {
					t.Errorf("expected %s error, got %+v", tt.wantCode, result)
				}
				return
			}

			var result struct {
				Status    string `json:"status"`
				Timestamp string `json:"timestamp"`
			}
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if result.Status != "ok" {
				t.Errorf("expected status=ok, got %s", result.Status)
			}
			ts, err := time.Parse(time.RFC3339Nano, result.Timestamp)
			if err != nil {
				t.Fatalf("expected ISO-8601 timestamp, got %q", result.Timestamp)
			}
			if ts.Before(before) {
				t.Errorf("expected current timestamp, got %v", ts)
			}
		})
	}
}
