package postgres

import (
	"time"

	"github.com/google/uuid"
)

// LookupAuditModel is a row of lookup_audit. Optional columns are nullable so
// "not applicable" and "empty" stay distinct.
type LookupAuditModel struct {
	ID             uuid.UUID
	Protocol       string
	IsLive         bool
	Country        *string
	Endpoint       *string
	Attempts       int
	FallbackReason *string
	Outcome        string
	Status         *string
	TypeCode       *string
	ErrorCategory  *string
	ErrorMessage   *string
	DurationMS     int64
	CreatedAt      time.Time
}
