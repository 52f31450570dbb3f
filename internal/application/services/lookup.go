package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

const (
	MaxTimeout   = 60 * time.Second
	auditTimeout = 5 * time.Second
)

type LookupResult struct {
	RequestID uuid.UUID
	Protocol  domain.Protocol
	Outcome   *domain.LookupOutcome
}

type LookupService struct {
	lookups  map[domain.Protocol]application.AddressLookup
	repo     application.LookupRepository
	recorder application.LookupRecorder
	defaults LookupDefaults
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLookupService registers one invoker per protocol. repo and recorder may
// be nil, which disables the audit trail and metrics respectively.
func NewLookupService(
	lookups []application.AddressLookup,
	repo application.LookupRepository,
	recorder application.LookupRecorder,
	defaults LookupDefaults,
	logger *slog.Logger,
) *LookupService {
	if defaults.MaxTimeout <= 0 || defaults.MaxTimeout > MaxTimeout {
		defaults.MaxTimeout = MaxTimeout
	}
	if defaults.Timeout > defaults.MaxTimeout {
		defaults.Timeout = defaults.MaxTimeout
	}

	byProtocol := make(map[domain.Protocol]application.AddressLookup, len(lookups))
	for _, l := range lookups {
		byProtocol[l.Protocol()] = l
	}
	return &LookupService{
		lookups:  byProtocol,
		repo:     repo,
		recorder: recorder,
		defaults: defaults,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *LookupService) Lookup(ctx context.Context, cmd LookupCommand) (*LookupResult, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, application.NewInvalidInputError(err)
	}
	if cmd.Timeout < 0 || cmd.Timeout > s.defaults.MaxTimeout {
		return nil, application.NewInvalidInputError(
			domain.NewInvalidFieldError("timeout", fmt.Sprintf("must be between 0 and %s", s.defaults.MaxTimeout)),
		)
	}

	protocolName := cmd.Protocol
	if protocolName == "" {
		protocolName = s.defaults.Protocol
	}
	protocol, err := domain.ParseProtocol(protocolName)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	lookup, ok := s.lookups[protocol]
	if !ok {
		return nil, application.NewConfigurationError(fmt.Errorf("no transport registered for %s", protocol))
	}

	req := s.buildRequest(cmd)
	requestID := uuid.New()
	logger := s.logger.With(
		"request_id", requestID,
		"protocol", protocol,
		"is_live", req.IsLive,
	)

	logger.Debug("lookup started", "request", req.String())

	start := time.Now()
	outcome, err := lookup.Invoke(ctx, req)
	duration := time.Since(start)

	if s.recorder != nil {
		s.recorder.ObserveLookup(protocol, outcome, err, duration)
	}
	s.recordAudit(ctx, requestID, protocol, req, outcome, err, duration, logger)

	if err != nil {
		logger.Error("lookup failed",
			"error", err,
			"category", application.CategorizeError(err),
			"duration", duration,
		)
		return nil, application.ToServiceError(err)
	}

	logger.Info("lookup completed",
		"endpoint", outcome.Endpoint,
		"attempts", outcome.Attempts,
		"fallback_reason", outcome.FallbackReason,
		"result", outcome.Response.Kind(),
		"duration", duration,
	)

	return &LookupResult{
		RequestID: requestID,
		Protocol:  protocol,
		Outcome:   outcome,
	}, nil
}

// FindLookup returns the audit record of an earlier lookup.
func (s *LookupService) FindLookup(ctx context.Context, id string) (*domain.LookupAudit, error) {
	lookupID, err := uuid.Parse(id)
	if err != nil {
		return nil, application.NewInvalidInputError(domain.NewInvalidFieldError("id", "must be a UUID"))
	}

	if s.repo == nil {
		return nil, application.NewNotFoundError(domain.NewLookupNotFoundError(id))
	}

	audit, err := s.repo.FindByID(ctx, lookupID)
	if err != nil {
		return nil, application.ToServiceError(err)
	}
	return audit, nil
}

func (s *LookupService) buildRequest(cmd LookupCommand) domain.LookupRequest {
	req := domain.LookupRequest{
		Address1:           cmd.Address1,
		Address2:           cmd.Address2,
		Address3:           cmd.Address3,
		Address4:           cmd.Address4,
		Address5:           cmd.Address5,
		Locality:           cmd.Locality,
		AdministrativeArea: cmd.AdministrativeArea,
		PostalCode:         cmd.PostalCode,
		Country:            cmd.Country,
		OutputLanguage:     strings.ToUpper(cmd.OutputLanguage),
		LicenseKey:         cmd.LicenseKey,
		IsLive:             s.defaults.IsLive,
		Timeout:            cmd.Timeout,
	}

	if strings.TrimSpace(req.LicenseKey) == "" {
		req.LicenseKey = s.defaults.LicenseKey
	}
	if req.OutputLanguage == "" {
		req.OutputLanguage = s.defaults.OutputLanguage
	}
	if req.Timeout == 0 {
		req.Timeout = s.defaults.Timeout
	}
	if cmd.IsLive != nil {
		req.IsLive = *cmd.IsLive
	}

	return req.WithDefaults()
}

// recordAudit never fails the lookup. It outlives a cancelled request so the
// trail also covers callers that gave up.
func (s *LookupService) recordAudit(
	ctx context.Context,
	id uuid.UUID,
	protocol domain.Protocol,
	req domain.LookupRequest,
	outcome *domain.LookupOutcome,
	lookupErr error,
	duration time.Duration,
	logger *slog.Logger,
) {
	if s.repo == nil {
		return
	}

	audit := domain.NewLookupAudit(id, protocol, req, outcome, duration)
	if lookupErr != nil {
		audit.ErrorCategory = string(application.CategorizeError(lookupErr))
		audit.ErrorMessage = lookupErr.Error()
		if fbErr, ok := application.IsFallbackError(lookupErr); ok {
			audit.Attempts = fbErr.Attempts
		}
	}

	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	if err := s.repo.Save(auditCtx, audit); err != nil {
		logger.Warn("failed to record lookup audit", "error", err)
	}
}
