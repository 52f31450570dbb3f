package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LookupRepository struct {
	db *pgxpool.Pool
}

func NewLookupRepository(db *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) Save(ctx context.Context, audit *domain.LookupAudit) error {
	query := `
		INSERT INTO lookup_audit (
			id, protocol, is_live, country, endpoint, attempts, fallback_reason,
			outcome, status, type_code, error_category, error_message, duration_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	m := toDBModel(audit)
	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.Protocol,
		m.IsLive,
		m.Country,
		m.Endpoint,
		m.Attempts,
		m.FallbackReason,
		m.Outcome,
		m.Status,
		m.TypeCode,
		m.ErrorCategory,
		m.ErrorMessage,
		m.DurationMS,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save lookup audit: %w", err)
	}

	return nil
}

func (r *LookupRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.LookupAudit, error) {
	query := `
		SELECT id, protocol, is_live, country, endpoint, attempts, fallback_reason,
		       outcome, status, type_code, error_category, error_message, duration_ms, created_at
		FROM lookup_audit WHERE id = $1
	`

	var m LookupAuditModel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Protocol, &m.IsLive, &m.Country, &m.Endpoint, &m.Attempts, &m.FallbackReason,
		&m.Outcome, &m.Status, &m.TypeCode, &m.ErrorCategory, &m.ErrorMessage, &m.DurationMS, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewLookupNotFoundError(id.String())
		}
		return nil, fmt.Errorf("failed to scan lookup audit: %w", err)
	}

	return toDomainModel(m), nil
}

// DeleteOlderThan removes at most limit rows created before cutoff, oldest
// first, and reports how many went.
func (r *LookupRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	query := `
		DELETE FROM lookup_audit
		WHERE id IN (
			SELECT id FROM lookup_audit
			WHERE created_at < $1
			ORDER BY created_at ASC
			LIMIT $2
		)
	`

	tag, err := r.db.Exec(ctx, query, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("delete expired lookup audits: %w", err)
	}

	return tag.RowsAffected(), nil
}
