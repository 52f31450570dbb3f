package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/avi-gateway/internal/application/services"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	lookupService *services.LookupService
	health        Pinger
	logger        *slog.Logger
}

// NewHandlers wires the HTTP surface. health may be nil when nothing needs
// checking.
func NewHandlers(lookupService *services.LookupService, health Pinger, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		lookupService: lookupService,
		health:        health,
		logger:        logger,
	}
}

// Register mounts every route on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/address-info", h.GetAddressInfo)
	mux.HandleFunc("GET /v1/lookups/{id}", h.GetLookupByID)
	mux.HandleFunc("GET /healthz", h.Healthz)
}
