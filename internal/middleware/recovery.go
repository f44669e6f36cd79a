package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// internalErrorBody is the opaque JSON answer for recovered panics.
// It must match the fault boundary's 500 body exactly.
const internalErrorBody = `{"error":"Something went wrong!"}`

// Recoverer is a middleware that recovers from panics.
// It logs the panic with its stack and returns the uniform 500 body.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rvr),
						slog.String("stack", string(debug.Stack())),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(internalErrorBody))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
