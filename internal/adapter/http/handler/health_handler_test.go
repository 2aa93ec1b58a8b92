package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandlerWithChecks().Liveness(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		checks   []DependencyCheck
		expected int
	}{
		{"all healthy", []DependencyCheck{{Name: "postgres", Check: ok}, {Name: "redis", Check: ok}}, http.StatusOK},
		{"redis down", []DependencyCheck{{Name: "postgres", Check: ok}, {Name: "redis", Check: down}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHealthHandlerWithChecks(tt.checks...).Readiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tt.expected == http.StatusOK && body["redis"] != "ok" {
				t.Fatalf("expected redis ok, got %+v", body)
			}
			if tt.expected != http.StatusOK && body["error"] != "redis unhealthy" {
				t.Fatalf("expected redis unhealthy, got %+v", body)
			}
		})
	}
}
