package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestViewerMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
		wantOK bool
	}{
		{name: "header", target: "/api/v1/blocks", header: "ACCT-1", want: "ACCT-1", wantOK: true},
		{name: "query", target: "/api/v1/blocks?viewer=ACCT-2", want: "ACCT-2", wantOK: true},
		{name: "header wins over query", target: "/api/v1/blocks?viewer=Q", header: "H", want: "H", wantOK: true},
		{name: "blank header", target: "/api/v1/blocks", header: "   "},
		{name: "absent", target: "/api/v1/blocks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(ViewerHeader, tt.header)
			}

			var got string
			var ok bool
			Viewer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = ViewerFromContext(r.Context())
			})).ServeHTTP(httptest.NewRecorder(), req)

			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ViewerFromContext() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequireViewer(t *testing.T) {
	handler := Viewer(RequireViewer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/holdings", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without viewer, got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/holdings", nil)
	req.Header.Set(ViewerHeader, "ACCT")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with viewer, got %d", rr.Code)
	}
}
