package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"loans-api/internal/middleware"
)

func TestRequestIDMiddleware(t *testing.T) {
	handler := middleware.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(middleware.ContextRequestID) == nil {
			t.Error("request id missing from context")
		}
	}))

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("X-Request-ID %q is not a uuid", got)
		}
	})

	t.Run("keeps a caller-supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans", nil)
		req.Header.Set(middleware.RequestIDHeader, "caller-id-1")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != "caller-id-1" {
			t.Errorf("X-Request-ID = %q, want caller-id-1", got)
		}
	})
}
