package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/store"
	"github.com/clientdesk/clientdesk/pkg/cryptox"
	"github.com/clientdesk/clientdesk/pkg/idx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// AccessTokenTTL is the fixed validity window of a client access link.
const AccessTokenTTL = 24 * time.Hour

// TokenService issues and resolves the opaque bearer tokens that gate the
// client portal. Tokens are stored as SHA-256 fingerprints; the plaintext
// credential exists only in the link handed to the admin.
type TokenService struct {
	Store   store.Store
	Audit   *AuditService
	BaseURL string // public origin the portal link points at
}

// Issue mints a new access token for the client. Every earlier token for the
// same client is removed first, expired or not, so only the newest link
// resolves: issuing a link revokes all previous ones.
func (s *TokenService) Issue(ctx context.Context, clientID string) (domain.AccessGrant, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccessGrant{}, fmt.Errorf("%w: %s", ErrClientNotFound, clientID)
		}
		return domain.AccessGrant{}, err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.AccessGrant{}, err
	}

	now := time.Now().UTC()
	record := domain.AccessToken{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		ClientID:  client.ID,
		ExpiresAt: now.Add(AccessTokenTTL),
		CreatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.AccessTokens().DeleteClientAccessTokens(ctx, client.ID); err != nil {
			return err
		}
		return tx.AccessTokens().CreateAccessToken(ctx, record)
	})
	if err != nil {
		l.Error("failed to issue access token", "client_id", clientID, "error", err)
		return domain.AccessGrant{}, err
	}

	s.Audit.Record(ctx, domain.AuditLinkGenerated,
		fmt.Sprintf("access link created for client: %s", client.ID))
	l.Info("access token issued", "client_id", client.ID, "expires_at", record.ExpiresAt)

	return domain.AccessGrant{
		Token:     token,
		ClientID:  client.ID,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

// PortalLink renders the shareable portal URL for a plaintext token.
func (s *TokenService) PortalLink(token string) string {
	return fmt.Sprintf("%s/v1/portal/%s", s.BaseURL, url.PathEscape(token))
}

// Resolve validates a presented token against a single snapshot of now and
// returns the client it grants access to. Expiry resolves at equality: a
// token whose expiresAt == now is already expired. Denials are audited; a
// valid access is audited too.
func (s *TokenService) Resolve(ctx context.Context, token string, now time.Time) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	record, err := s.Store.AccessTokens().GetAccessTokenByHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Audit.Record(ctx, domain.AuditAccessDenied, "access attempt with unknown token")
			return domain.Client{}, fmt.Errorf("%w: unknown token", ErrTokenNotFound)
		}
		return domain.Client{}, err
	}

	if !now.Before(record.ExpiresAt) {
		s.Audit.Record(ctx, domain.AuditAccessDenied,
			fmt.Sprintf("expired token for client: %s", record.ClientID))
		return domain.Client{}, fmt.Errorf("%w: link older than %s", ErrTokenExpired, AccessTokenTTL)
	}

	client, err := s.Store.Clients().GetClientByID(ctx, record.ClientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, fmt.Errorf("%w: token client %s", ErrClientNotFound, record.ClientID)
		}
		return domain.Client{}, err
	}

	s.Audit.Record(ctx, domain.AuditClientAccess,
		fmt.Sprintf("access granted to client: %s", client.Name))
	l.Info("client access granted", "client_id", client.ID)
	return client, nil
}
