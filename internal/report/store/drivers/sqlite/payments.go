package sqlite

import (
	"context"

	"github.com/clientdesk/clientdesk/internal/report/domain"
)

type paymentsRepo struct {
	db dbtx
}

const paymentColumns = `id, project_id, paid_at, amount_cents, kind, created_at`

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (`+paymentColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProjectID, p.PaidAt, p.Amount, p.Kind, p.CreatedAt,
	)
	return err
}

func (r *paymentsRepo) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *paymentsRepo) ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	return r.list(ctx, `
		SELECT p.id, p.project_id, p.paid_at, p.amount_cents, p.kind, p.created_at
		FROM payments p
		JOIN projects pr ON pr.id = p.project_id
		WHERE pr.client_id = ?
		ORDER BY p.id`, clientID)
}

func (r *paymentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.PaidAt, &p.Amount, &p.Kind, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
