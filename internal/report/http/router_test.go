package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/internal/report/store/drivers/sqlite"
	"github.com/clientdesk/clientdesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct-horse"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "report-service",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	audit := &service.AuditService{Store: st}
	ledger := &service.LedgerService{Store: st, Audit: audit, Currency: "USD"}
	tokens := &service.TokenService{Store: st, Audit: audit, BaseURL: "http://localhost:8080"}
	session := &service.SessionService{
		Ledger:        ledger,
		Tokens:        tokens,
		Audit:         audit,
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
	}

	r := NewRouter("test", st, logger)
	r.SessionService = session
	r.LedgerService = ledger
	r.TokenService = tokens
	r.AuditService = audit
	r.ApplyRoutes()

	return r
}

func doRequest(t *testing.T, r *Router, method, path, sessionToken string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func login(t *testing.T, r *Router) string {
	t.Helper()
	rec := doRequest(t, r, http.MethodPost, "/v1/session", "", LoginRequest{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[LoginResponse](t, rec).SessionToken
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/v1/session", "", LoginRequest{
		Email:    testAdminEmail,
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody[ErrorResponse](t, rec)
	require.Equal(t, "invalid_credentials", body.Error)
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/v1/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")

	rec = doRequest(t, r, http.MethodGet, "/v1/clients", "not-a-session", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec := doRequest(t, r, http.MethodDelete, "/v1/session", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/v1/clients", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLedgerFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// Create a client.
	rec := doRequest(t, r, http.MethodPost, "/v1/clients", token, CreateClientRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	client := decodeBody[ClientResponse](t, rec)
	require.NotEmpty(t, client.ID)

	// Create a project with a $1,000.00 budget.
	rec = doRequest(t, r, http.MethodPost, "/v1/projects", token, CreateProjectRequest{
		ClientID: client.ID,
		Name:     "Website Redesign",
		Budget:   100_000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decodeBody[ProjectResponse](t, rec)
	require.Equal(t, "active", project.Status)
	require.Equal(t, int64(100_000), project.Balance)
	require.Equal(t, "$1,000.00", project.BudgetDisplay)

	// Record a partial payment.
	rec = doRequest(t, r, http.MethodPost, "/v1/payments", token, RecordPaymentRequest{
		ProjectID: project.ID,
		Amount:    40_000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	partial := decodeBody[RecordPaymentResponse](t, rec)
	require.Equal(t, int64(60_000), partial.Balance)
	require.Equal(t, "active", partial.Status)
	require.Empty(t, partial.Warning)

	// Overpay: balance clamps to zero, project closes, warning is surfaced.
	rec = doRequest(t, r, http.MethodPost, "/v1/payments", token, RecordPaymentRequest{
		ProjectID: project.ID,
		Amount:    70_000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	excess := decodeBody[RecordPaymentResponse](t, rec)
	require.Equal(t, int64(0), excess.Balance)
	require.Equal(t, "closed", excess.Status)
	require.NotEmpty(t, excess.Warning)

	// Overview aggregates across the ledger.
	rec = doRequest(t, r, http.MethodGet, "/v1/overview", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decodeBody[SummaryResponse](t, rec)
	require.Equal(t, int64(100_000), overview.TotalBudget)
	require.Equal(t, int64(110_000), overview.TotalPaid)
	require.Equal(t, int64(0), overview.TotalPending)
}

func TestProjectStatusOverride(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec := doRequest(t, r, http.MethodPost, "/v1/clients", token, CreateClientRequest{
		Name: "Acme Corp", Email: "billing@acme.test",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	client := decodeBody[ClientResponse](t, rec)

	rec = doRequest(t, r, http.MethodPost, "/v1/projects", token, CreateProjectRequest{
		ClientID: client.ID, Name: "Retainer", Budget: 50_000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decodeBody[ProjectResponse](t, rec)

	rec = doRequest(t, r, http.MethodPatch, "/v1/projects/"+project.ID, token, SetProjectStatusRequest{
		Status: "closed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "closed", decodeBody[ProjectResponse](t, rec).Status)

	rec = doRequest(t, r, http.MethodPatch, "/v1/projects/"+project.ID, token, SetProjectStatusRequest{
		Status: "pending",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortalAccessFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec := doRequest(t, r, http.MethodPost, "/v1/clients", token, CreateClientRequest{
		Name: "Acme Corp", Email: "billing@acme.test",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	client := decodeBody[ClientResponse](t, rec)

	rec = doRequest(t, r, http.MethodPost, "/v1/projects", token, CreateProjectRequest{
		ClientID: client.ID, Name: "Website Redesign", Budget: 100_000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, r, http.MethodPost, fmt.Sprintf("/v1/clients/%s/link", client.ID), token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	link := decodeBody[IssueLinkResponse](t, rec)
	require.NotEmpty(t, link.Token)
	require.Contains(t, link.Link, "/v1/portal/")

	// The link works without any session.
	rec = doRequest(t, r, http.MethodGet, "/v1/portal/"+link.Token, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	portal := decodeBody[PortalResponse](t, rec)
	require.Equal(t, client.ID, portal.Client.ID)
	require.Len(t, portal.Projects, 1)
	require.Equal(t, int64(100_000), portal.Summary.TotalBudget)

	// Garbage tokens are denied with a readable reason, not a 500.
	rec = doRequest(t, r, http.MethodGet, "/v1/portal/garbage", "", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "access_denied", decodeBody[ErrorResponse](t, rec).Error)
}

func TestAuditEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec := doRequest(t, r, http.MethodPost, "/v1/clients", token, CreateClientRequest{
		Name: "Acme Corp", Email: "billing@acme.test",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/v1/audit", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decodeBody[[]AuditEntryResponse](t, rec)
	require.NotEmpty(t, entries)
	// Newest first: the client creation follows the admin login.
	require.Equal(t, "CLIENT_CREATE", entries[0].Action)

	rec = doRequest(t, r, http.MethodGet, "/v1/audit?limit=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]AuditEntryResponse](t, rec), 1)

	rec = doRequest(t, r, http.MethodGet, "/v1/audit?limit=bogus", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody[HealthResponse](t, rec).Status)

	rec = doRequest(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody[HealthResponse](t, rec).Status)
}
