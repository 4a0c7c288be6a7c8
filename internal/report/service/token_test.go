package service

import (
	"context"
	"testing"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/stretchr/testify/require"
)

func TestIssueRequiresExistingClient(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tokens.Issue(context.Background(), "no-such-client")
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestResolveLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Acme", "acme@x.com")

	grant, err := env.tokens.Issue(ctx, client.ID)
	require.NoError(t, err)
	require.NotEmpty(t, grant.Token)
	require.Equal(t, 1, env.countAction(t, domain.AuditLinkGenerated))

	t.Run("resolves before expiry", func(t *testing.T) {
		resolved, err := env.tokens.Resolve(ctx, grant.Token, grant.ExpiresAt.Add(-time.Hour))
		require.NoError(t, err)
		require.Equal(t, client.ID, resolved.ID)
		require.Equal(t, 1, env.countAction(t, domain.AuditClientAccess))
	})

	t.Run("resolves one instant before expiry", func(t *testing.T) {
		_, err := env.tokens.Resolve(ctx, grant.Token, grant.ExpiresAt.Add(-time.Second))
		require.NoError(t, err)
	})

	t.Run("equality resolves to expired", func(t *testing.T) {
		_, err := env.tokens.Resolve(ctx, grant.Token, grant.ExpiresAt)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired past the window", func(t *testing.T) {
		_, err := env.tokens.Resolve(ctx, grant.Token, grant.ExpiresAt.Add(time.Hour))
		require.ErrorIs(t, err, ErrTokenExpired)
	})
}

// Issuing a token for client C at t0 must resolve at t0+23h and fail at
// t0+25h with the 24h TTL.
func TestResolveTTLWindow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Acme", "acme@x.com")
	t0 := time.Now().UTC()

	grant, err := env.tokens.Issue(ctx, client.ID)
	require.NoError(t, err)

	_, err = env.tokens.Resolve(ctx, grant.Token, t0.Add(23*time.Hour))
	require.NoError(t, err)

	_, err = env.tokens.Resolve(ctx, grant.Token, t0.Add(25*time.Hour))
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestIssueSupersedesPriorTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()

	client := env.mustClient(t, "Acme", "acme@x.com")

	old, err := env.tokens.Issue(ctx, client.ID)
	require.NoError(t, err)

	// The old token is still well within its TTL when it is superseded.
	latest, err := env.tokens.Issue(ctx, client.ID)
	require.NoError(t, err)

	_, err = env.tokens.Resolve(ctx, old.Token, now)
	require.ErrorIs(t, err, ErrTokenNotFound, "a new link revokes every earlier one")

	resolved, err := env.tokens.Resolve(ctx, latest.Token, now)
	require.NoError(t, err)
	require.Equal(t, client.ID, resolved.ID)
}

func TestResolveUnknownTokenAudits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := env.countAction(t, domain.AuditAccessDenied)

	_, err := env.tokens.Resolve(ctx, "not-a-real-token", time.Now().UTC())
	require.ErrorIs(t, err, ErrTokenNotFound)

	require.Equal(t, before+1, env.countAction(t, domain.AuditAccessDenied))
}

func TestPortalLink(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, "http://localhost:8080/v1/portal/abc", env.tokens.PortalLink("abc"))
}
