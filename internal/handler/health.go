package handler

import (
	"net/http"
	"time"
)

// HealthHandler manages the health check endpoint.
type HealthHandler struct {
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
// started is the process start time, captured once at initialization
// and read-only afterwards.
func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{
		started: started,
		now:     time.Now,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Health reports liveness. It always succeeds while the process is up;
// orchestrator probes use it directly.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	now := h.now()

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    now.Sub(h.started).Seconds(),
	})
	return nil
}
