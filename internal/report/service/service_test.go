package service

import (
	"context"
	"testing"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct-horse"
)

type testEnv struct {
	store   *sqlite.Store
	audit   *AuditService
	ledger  *LedgerService
	tokens  *TokenService
	session *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	audit := &AuditService{Store: st}
	ledger := &LedgerService{Store: st, Audit: audit, Currency: "USD"}
	tokens := &TokenService{Store: st, Audit: audit, BaseURL: "http://localhost:8080"}
	session := &SessionService{
		Ledger:        ledger,
		Tokens:        tokens,
		Audit:         audit,
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
	}

	return &testEnv{
		store:   st,
		audit:   audit,
		ledger:  ledger,
		tokens:  tokens,
		session: session,
	}
}

// mustClient creates a client or fails the test.
func (e *testEnv) mustClient(t *testing.T, name, email string) domain.Client {
	t.Helper()
	client, err := e.ledger.CreateClient(context.Background(), name, email)
	require.NoError(t, err)
	return client
}

// mustProject creates an active project or fails the test.
func (e *testEnv) mustProject(t *testing.T, clientID, name string, budget int64) domain.Project {
	t.Helper()
	project, err := e.ledger.CreateProject(context.Background(), clientID, name, budget, domain.ProjectActive)
	require.NoError(t, err)
	return project
}

// countAction counts retained audit entries with the given action.
func (e *testEnv) countAction(t *testing.T, action domain.AuditAction) int {
	t.Helper()
	entries, err := e.audit.Recent(context.Background(), AuditRingSize)
	require.NoError(t, err)

	n := 0
	for _, entry := range entries {
		if entry.Action == action {
			n++
		}
	}
	return n
}
