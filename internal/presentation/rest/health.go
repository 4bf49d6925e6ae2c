package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/openisa/nps-stub/internal/domain/port"
)

// HealthHandler handles HTTP health check endpoints.
type HealthHandler struct {
	store  port.ReportStore
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store port.ReportStore, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// RegisterRoutes registers health check routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /readyz", h.readyz)
}

func (h *HealthHandler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]string{
		"status":  "healthy",
		"service": "nps-stub",
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to write health response", "error", err)
	}
}

func (h *HealthHandler) readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("store ping failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		resp := map[string]string{
			"status":  "unavailable",
			"service": "nps-stub",
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("failed to write readiness response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	resp := map[string]string{
		"status":  "ready",
		"service": "nps-stub",
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to write readiness response", "error", err)
	}
}
