package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides HTTP health check endpoints for the loanshield service.
type HealthHandler struct {
	logger    *slog.Logger
	startTime time.Time
	ready     func() map[string]string
}

// NewHealthHandler creates a new health check handler. ready reports the
// per-dependency readiness checks exposed on /readyz.
func NewHealthHandler(logger *slog.Logger, ready func() map[string]string) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		startTime: time.Now(),
		ready:     ready,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Service: "loanshield",
		Uptime:  time.Since(h.startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Readyz handles readiness probe requests. A degraded dependency turns the
// response 503 so orchestrators stop routing traffic here.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := h.ready()

	status := "ready"
	code := http.StatusOK
	for _, state := range checks {
		if state != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	resp := ReadinessResponse{
		Status:  status,
		Service: "loanshield",
		Checks:  checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
