package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/application"
)

// AuditPruner deletes lookup audit rows older than the retention window.
type AuditPruner struct {
	repo      application.LookupRepository
	retention time.Duration
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	now       func() time.Time
}

func NewAuditPruner(
	repo application.LookupRepository,
	retention time.Duration,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *AuditPruner {
	return &AuditPruner{
		repo:      repo,
		retention: retention,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
		now:       time.Now,
	}
}

func (w *AuditPruner) Start(ctx context.Context) {
	w.logger.Info("audit pruner started", "interval", w.interval, "retention", w.retention)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if _, err := w.Prune(ctx); err != nil {
		w.logger.Error("audit pruning failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("audit pruner stopping")
			return
		case <-ticker.C:
			if _, err := w.Prune(ctx); err != nil {
				w.logger.Error("audit pruning failed", "error", err)
			}
		}
	}
}

// Prune deletes batches until one comes back short, so a backlog is cleared
// in a single run without holding one long transaction.
func (w *AuditPruner) Prune(ctx context.Context) (int64, error) {
	cutoff := w.now().Add(-w.retention)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		deleted, err := w.repo.DeleteOlderThan(ctx, cutoff, w.batchSize)
		if err != nil {
			return total, err
		}
		total += deleted

		if deleted < int64(w.batchSize) {
			break
		}
	}

	if total > 0 {
		w.logger.Info("pruned lookup audits", "deleted", total, "cutoff", cutoff)
	}

	return total, nil
}
