package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/interfaces/rest"
)

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", "error", err)
			rest.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
