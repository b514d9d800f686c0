package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const ContextRequestID contextKey = "request_id"

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware stamps every request with an id, keeping one supplied
// by the caller if present.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		ctx := context.WithValue(r.Context(), ContextRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
