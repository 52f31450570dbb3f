package postgres

import (
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

func toDomainModel(m LookupAuditModel) *domain.LookupAudit {
	return &domain.LookupAudit{
		ID:             m.ID,
		Protocol:       domain.Protocol(m.Protocol),
		IsLive:         m.IsLive,
		Country:        deref(m.Country),
		Endpoint:       deref(m.Endpoint),
		Attempts:       m.Attempts,
		FallbackReason: domain.FallbackReason(deref(m.FallbackReason)),
		Outcome:        m.Outcome,
		Status:         deref(m.Status),
		TypeCode:       deref(m.TypeCode),
		ErrorCategory:  deref(m.ErrorCategory),
		ErrorMessage:   deref(m.ErrorMessage),
		Duration:       time.Duration(m.DurationMS) * time.Millisecond,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

func toDBModel(a *domain.LookupAudit) *LookupAuditModel {
	return &LookupAuditModel{
		ID:             a.ID,
		Protocol:       string(a.Protocol),
		IsLive:         a.IsLive,
		Country:        nullable(a.Country),
		Endpoint:       nullable(a.Endpoint),
		Attempts:       a.Attempts,
		FallbackReason: nullable(string(a.FallbackReason)),
		Outcome:        a.Outcome,
		Status:         nullable(a.Status),
		TypeCode:       nullable(a.TypeCode),
		ErrorCategory:  nullable(a.ErrorCategory),
		ErrorMessage:   nullable(a.ErrorMessage),
		DurationMS:     a.Duration.Milliseconds(),
		CreatedAt:      a.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
