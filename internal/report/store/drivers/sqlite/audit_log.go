package sqlite

import (
	"context"

	"github.com/clientdesk/clientdesk/internal/report/domain"
)

type auditLogRepo struct {
	db dbtx
}

func (r *auditLogRepo) AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (ts, action, detail) VALUES (?, ?, ?)`,
		e.Timestamp, string(e.Action), e.Detail,
	)
	return err
}

func (r *auditLogRepo) TrimAuditLog(ctx context.Context, keep int) error {
	// AUTOINCREMENT ids are monotonic, so the lowest ids are the oldest.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM audit_log
		WHERE id NOT IN (SELECT id FROM audit_log ORDER BY id DESC LIMIT ?)`, keep)
	return err
}

func (r *auditLogRepo) ListAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ts, action, detail FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var action string
		if err := rows.Scan(&e.ID, &e.Timestamp, &action, &e.Detail); err != nil {
			return nil, err
		}
		e.Action = domain.AuditAction(action)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *auditLogRepo) CountAuditEntries(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n)
	return n, err
}
