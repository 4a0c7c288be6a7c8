package service

import (
	"context"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/store"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// AuditRingSize is how many entries the audit log retains. Older entries are
// evicted as new ones land.
const AuditRingSize = 50

// AuditService is the shared write sink for security- and mutation-relevant
// events. Record never fails from the caller's point of view: it is invoked
// on success and failure paths alike, so storage errors are logged and
// swallowed rather than propagated.
type AuditService struct {
	Store store.Store
}

// Record appends an entry and evicts anything beyond the ring bound.
func (s *AuditService) Record(ctx context.Context, action domain.AuditAction, detail string) {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		entry := domain.AuditEntry{
			Timestamp: time.Now().UTC(),
			Action:    action,
			Detail:    detail,
		}
		if err := tx.AuditLog().AppendAuditEntry(ctx, entry); err != nil {
			return err
		}
		return tx.AuditLog().TrimAuditLog(ctx, AuditRingSize)
	})
	if err != nil {
		l.Error("failed to record audit entry", "action", action, "error", err)
		return
	}

	l.Debug("audit entry recorded", "action", action, "detail", detail)
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns the whole ring.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 || limit > AuditRingSize {
		limit = AuditRingSize
	}
	return s.Store.AuditLog().ListAuditEntries(ctx, limit)
}
