package avi

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

// FallbackInvoker calls the primary endpoint and, in live mode, tries the
// backup endpoint once when the primary failed or answered with a fatal
// ErrorInfo. It holds no mutable state.
type FallbackInvoker struct {
	transport application.Transport
	endpoints domain.EndpointSet
	logger    *slog.Logger
}

func NewFallbackInvoker(transport application.Transport, endpoints domain.EndpointSet, logger *slog.Logger) *FallbackInvoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackInvoker{
		transport: transport,
		endpoints: endpoints,
		logger:    logger.With("protocol", transport.Protocol()),
	}
}

func (f *FallbackInvoker) Protocol() domain.Protocol {
	return f.transport.Protocol()
}

func (f *FallbackInvoker) Invoke(ctx context.Context, req domain.LookupRequest) (*domain.LookupOutcome, error) {
	req = req.WithDefaults()

	if checker, ok := f.transport.(application.RequestChecker); ok {
		if err := checker.CheckRequest(req); err != nil {
			return nil, err
		}
	}

	primary, backup := f.endpoints.Select(req.IsLive)

	resp, err := f.attempt(ctx, primary, req)
	if err == nil && resp.IsValid() {
		return &domain.LookupOutcome{Response: resp, Endpoint: primary, Attempts: 1}, nil
	}

	// Trial mode has nowhere to escalate to.
	if !req.IsLive {
		if err != nil {
			return nil, err
		}
		return &domain.LookupOutcome{Response: resp, Endpoint: primary, Attempts: 1}, nil
	}

	reason := domain.FallbackTransportError
	primaryErr := err
	if err == nil {
		info, _ := resp.ErrorInfo()
		reason = domain.FallbackFatalResponse
		primaryErr = &application.FatalResponseError{Endpoint: primary, Info: info}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &application.FallbackError{Primary: primaryErr, Backup: ctxErr, Attempts: 1}
	}

	f.logger.Warn("primary endpoint unusable, trying backup",
		"primary", primary,
		"backup", backup,
		"reason", reason,
		"error", primaryErr,
	)

	backupResp, backupErr := f.attempt(ctx, backup, req)
	if backupErr != nil {
		f.logger.Error("backup endpoint failed",
			"backup", backup,
			"error", backupErr,
		)
		return nil, &application.FallbackError{Primary: primaryErr, Backup: backupErr, Attempts: 2}
	}

	return &domain.LookupOutcome{
		Response:       backupResp,
		Endpoint:       backup,
		Attempts:       2,
		FallbackReason: reason,
	}, nil
}

// attempt runs one call under its own timeout. A response with neither
// member is reported as a transport failure.
func (f *FallbackInvoker) attempt(ctx context.Context, endpoint string, req domain.LookupRequest) (domain.LookupResponse, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	f.logger.Debug("calling endpoint", "endpoint", endpoint, "timeout", req.Timeout)

	resp, err := f.transport.Call(attemptCtx, endpoint, req)
	if err != nil {
		return domain.LookupResponse{}, err
	}
	if resp.IsZero() {
		return domain.LookupResponse{}, application.NewTransportError(f.transport.Protocol(), endpoint, application.OpEmpty, 0, ErrEmptyResponse)
	}
	return resp, nil
}
