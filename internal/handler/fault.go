package handler

import (
	"log/slog"
	"net/http"

	"github.com/userhub/userhub/internal/middleware"
)

// internalErrorMessage is the opaque body returned for any server fault.
// Diagnostic detail stays in the logs and never reaches the client.
const internalErrorMessage = "Something went wrong!"

// HandlerFunc is an http.HandlerFunc that may fail with an error.
// Validation failures are not errors: handlers answer those with 4xx
// themselves and return nil.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// FaultBoundary converts HandlerFuncs into http.HandlerFuncs, giving
// every route the same fault behavior without per-handler repetition.
// Returned errors are logged and answered as an opaque 500. Panics are
// handled one level up by middleware.Recoverer.
type FaultBoundary struct {
	logger *slog.Logger
}

// NewFaultBoundary creates a new FaultBoundary.
func NewFaultBoundary(logger *slog.Logger) *FaultBoundary {
	return &FaultBoundary{
		logger: logger,
	}
}

// Wrap adapts fn for registration on the router.
func (fb *FaultBoundary) Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		fb.logger.Error("unhandled error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)

		writeError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}
