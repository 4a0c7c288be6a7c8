package sqlite

import (
	"context"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/store"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, client_id, name, status, budget_cents, balance_cents, created_at`

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ClientID, p.Name, string(p.Status), p.Budget, p.Balance, p.CreatedAt,
	)
	return err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

func (r *projectsRepo) ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	return r.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE client_id = ? ORDER BY id`, clientID)
}

func (r *projectsRepo) UpdateProjectBalance(
	ctx context.Context,
	id string,
	balance int64,
	status domain.ProjectStatus,
) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET balance_cents = ?, status = ? WHERE id = ?`,
		balance, string(status), id,
	)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *projectsRepo) UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *projectsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var status string
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &status, &p.Budget, &p.Balance, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Status = domain.ProjectStatus(status)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var p domain.Project
	var status string
	if err := row.Scan(&p.ID, &p.ClientID, &p.Name, &status, &p.Budget, &p.Balance, &p.CreatedAt); err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	p.Status = domain.ProjectStatus(status)
	return p, nil
}

// mustAffect maps zero-row updates to ErrNotFound.
func mustAffect(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
