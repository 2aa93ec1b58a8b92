package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/iho/blockview/internal/adapter/http/dto"
	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blocks?limit=50", nil)
	if got := parseIntQuery(req, "limit", 10); got != 50 {
		t.Fatalf("expected limit=50, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/blocks?limit=invalid", nil)
	if got := parseIntQuery(req, "limit", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "limit", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"block not found", domain.ErrBlockNotFound, http.StatusNotFound},
		{"holding not found", domain.ErrHoldingAccountNotFound, http.StatusNotFound},
		{"network not found", domain.ErrNetworkNotFound, http.StatusNotFound},
		{"duplicate block", fmt.Errorf("%w: blk_1", domain.ErrBlockExists), http.StatusConflict},
		{"duplicate holding", domain.ErrHoldingAccountExists, http.StatusConflict},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"wrapped missing sender", fmt.Errorf("block 2: %w", domain.ErrMissingSender), http.StatusBadRequest},
		{"too long", domain.ErrValueTooLong, http.StatusBadRequest},
		{"amount out of range", fmt.Errorf("block 0: amount: %w", domain.ErrAmountOutOfRange), http.StatusBadRequest},
		{"missing viewer", domain.ErrMissingViewer, http.StatusBadRequest},
		{"empty batch", usecase.ErrEmptyBatch, http.StatusBadRequest},
		{"batch too large", usecase.ErrBatchTooLarge, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad request", "detail")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "bad request" {
		t.Fatalf("expected error message to propagate, got %+v", resp)
	}
}

func TestParseBoolQuery(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"/blocks", false},
		{"/blocks?expand", true},
		{"/blocks?expand=true", true},
		{"/blocks?expand=1", true},
		{"/blocks?expand=false", false},
		{"/blocks?expand=maybe", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if got := parseBoolQuery(req, "expand"); got != tt.want {
			t.Fatalf("parseBoolQuery(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestOptionalQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blocks?network=eth&empty=", nil)

	if got := optionalQuery(req, "network"); got == nil || *got != "eth" {
		t.Fatalf("expected eth, got %v", got)
	}
	if got := optionalQuery(req, "empty"); got != nil {
		t.Fatalf("expected nil for empty value, got %v", *got)
	}
	if got := optionalQuery(req, "missing"); got != nil {
		t.Fatalf("expected nil for missing value, got %v", *got)
	}
}
