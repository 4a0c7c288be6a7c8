package sqlite

import (
	"context"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
)

type accessTokensRepo struct {
	db dbtx
}

func (r *accessTokensRepo) CreateAccessToken(ctx context.Context, t domain.AccessToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO access_tokens (id, token_hash, client_id, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.TokenHash, t.ClientID, t.ExpiresAt, t.CreatedAt,
	)
	return err
}

func (r *accessTokensRepo) GetAccessTokenByHash(ctx context.Context, hash string) (domain.AccessToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, client_id, expires_at, created_at
		 FROM access_tokens WHERE token_hash = ?`, hash)

	var t domain.AccessToken
	if err := row.Scan(&t.ID, &t.TokenHash, &t.ClientID, &t.ExpiresAt, &t.CreatedAt); err != nil {
		return domain.AccessToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *accessTokensRepo) DeleteClientAccessTokens(ctx context.Context, clientID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM access_tokens WHERE client_id = ?`, clientID)
	return err
}

func (r *accessTokensRepo) DeleteExpiredAccessTokens(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM access_tokens WHERE expires_at <= ?`, now)
	return err
}
