package domain

import (
	"time"

	"github.com/google/uuid"
)

// LookupAudit is the persisted trace of one invocation. It never stores the
// license key or the address itself.
type LookupAudit struct {
	ID             uuid.UUID
	Protocol       Protocol
	IsLive         bool
	Country        string
	Endpoint       string
	Attempts       int
	FallbackReason FallbackReason
	Outcome        string
	Status         string
	TypeCode       string
	ErrorCategory  string
	ErrorMessage   string
	Duration       time.Duration
	CreatedAt      time.Time
}

const (
	OutcomeAddress = "address"
	OutcomeError   = "error"
	OutcomeFailed  = "failed"
)

// NewLookupAudit builds the audit record for a completed invocation. outcome
// may be nil when the invocation failed.
func NewLookupAudit(id uuid.UUID, protocol Protocol, req LookupRequest, outcome *LookupOutcome, duration time.Duration) *LookupAudit {
	a := &LookupAudit{
		ID:        id,
		Protocol:  protocol,
		IsLive:    req.IsLive,
		Country:   req.Country,
		Outcome:   OutcomeFailed,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}

	if outcome == nil {
		return a
	}

	a.Endpoint = outcome.Endpoint
	a.Attempts = outcome.Attempts
	a.FallbackReason = outcome.FallbackReason

	if info, ok := outcome.Response.AddressInfo(); ok {
		a.Outcome = OutcomeAddress
		a.Status = info.Status
	}
	if info, ok := outcome.Response.ErrorInfo(); ok {
		a.Outcome = OutcomeError
		a.TypeCode = info.TypeCode
	}

	return a
}
