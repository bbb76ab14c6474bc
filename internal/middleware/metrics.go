package middleware

import (
	"net/http"
)

// RequestRecorder receives one observation per served request
type RequestRecorder interface {
	RecordHTTPRequest(method string, statusCode int)
}

// Metrics creates middleware that counts requests by method and status.
// A nil recorder disables it.
func Metrics(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)
			recorder.RecordHTTPRequest(r.Method, wrapped.Status())
		})
	}
}
