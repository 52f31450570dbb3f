package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/google/uuid"
)

// Transport performs one GetAddressInfo call against one endpoint. Failures
// to obtain a usable response are returned as *TransportError.
type Transport interface {
	Protocol() domain.Protocol
	Call(ctx context.Context, endpoint string, req domain.LookupRequest) (domain.LookupResponse, error)
}

// RequestChecker is implemented by transports that reject a request before
// any network call.
type RequestChecker interface {
	CheckRequest(req domain.LookupRequest) error
}

// AddressLookup is the port for a protocol-bound fallback invoker.
type AddressLookup interface {
	Protocol() domain.Protocol
	Invoke(ctx context.Context, req domain.LookupRequest) (*domain.LookupOutcome, error)
}

// LookupRepository is the port for the lookup audit trail.
type LookupRepository interface {
	Save(ctx context.Context, audit *domain.LookupAudit) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.LookupAudit, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// LookupRecorder receives metrics for finished invocations.
type LookupRecorder interface {
	ObserveLookup(protocol domain.Protocol, outcome *domain.LookupOutcome, err error, duration time.Duration)
}
