package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ViewerHeader carries the viewer's own account number.
const ViewerHeader = "X-Account-Number"

type viewerKey struct{}

// Viewer stores the viewer's account number in the request context when one is
// supplied through ViewerHeader or the "viewer" query parameter.
func Viewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := strings.TrimSpace(r.Header.Get(ViewerHeader))
		if viewer == "" {
			viewer = strings.TrimSpace(r.URL.Query().Get("viewer"))
		}

		if viewer != "" {
			r = r.WithContext(WithViewer(r.Context(), viewer))
		}

		next.ServeHTTP(w, r)
	})
}

// RequireViewer rejects requests without a viewer with 400.
func RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ViewerFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"missing viewer","message":"set the X-Account-Number header or the viewer query parameter"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithViewer returns a copy of ctx carrying viewer.
func WithViewer(ctx context.Context, viewer string) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

// ViewerFromContext returns the viewer stored by Viewer.
func ViewerFromContext(ctx context.Context) (string, bool) {
	viewer, ok := ctx.Value(viewerKey{}).(string)
	return viewer, ok && viewer != ""
}
