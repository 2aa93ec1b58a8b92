package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/blockview/internal/adapter/http/dto"
	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

const maxRequestBody = 4 << 20

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// decodeJSON decodes a size-limited request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	return json.NewDecoder(r.Body).Decode(dst)
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBlockNotFound),
		errors.Is(err, domain.ErrHoldingAccountNotFound),
		errors.Is(err, domain.ErrNetworkNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBlockExists),
		errors.Is(err, domain.ErrHoldingAccountExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidFee),
		errors.Is(err, domain.ErrMissingSender),
		errors.Is(err, domain.ErrMissingRecipient),
		errors.Is(err, domain.ErrValueTooLong),
		errors.Is(err, domain.ErrAmountOutOfRange),
		errors.Is(err, domain.ErrMissingViewer),
		errors.Is(err, domain.ErrMissingAccountNumber),
		errors.Is(err, domain.ErrMissingNetwork),
		errors.Is(err, domain.ErrInvalidNetworkName),
		errors.Is(err, usecase.ErrEmptyBatch),
		errors.Is(err, usecase.ErrBatchTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseBoolQuery parses a boolean query parameter; a bare "?key" counts as true.
func parseBoolQuery(r *http.Request, key string) bool {
	q := r.URL.Query()
	if !q.Has(key) {
		return false
	}
	val := q.Get(key)
	if val == "" {
		return true
	}
	b, err := strconv.ParseBool(val)
	return err == nil && b
}

// optionalQuery returns nil for an absent or empty query parameter.
func optionalQuery(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}
