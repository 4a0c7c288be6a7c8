package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/pkg/cryptox"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// DefaultSessionTTL bounds how long an admin session stays valid without a
// fresh login.
const DefaultSessionTTL = 12 * time.Hour

// SessionService is the view controller: it decides which of the admin,
// client, or denied states a caller may observe. Admin authentication is an
// equality check against the single configured identity; client
// authentication delegates to the token service. Sessions are held in
// memory; a restart logs every admin out, which is acceptable for a
// single-admin tool.
type SessionService struct {
	Ledger *LedgerService
	Tokens *TokenService
	Audit  *AuditService

	AdminEmail    string
	AdminPassword string
	SessionTTL    time.Duration

	mu       sync.Mutex
	sessions map[string]adminSession
}

type adminSession struct {
	email     string
	expiresAt time.Time
}

// AccessResult is the outcome of a client portal access attempt.
type AccessResult struct {
	State  domain.ViewState
	View   domain.ClientView
	Reason string // user-facing denial message when State == ViewAccessDenied
}

// Login authenticates the admin and returns an opaque session token.
// A mismatch is audited as a failed attempt; the account is never locked.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		s.Audit.Record(ctx, domain.AuditAdminLoginFail, "failed admin login attempt")
		l.Warn("admin login failed", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[string]adminSession)
	}
	s.sessions[cryptox.FingerprintToken(token)] = adminSession{
		email:     email,
		expiresAt: time.Now().Add(s.sessionTTL()),
	}
	s.mu.Unlock()

	s.Audit.Record(ctx, domain.AuditAdminLogin, "admin login successful")
	l.Info("admin logged in")
	return token, nil
}

// Logout ends the session. Unknown tokens yield ErrInvalidSession.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	hash := cryptox.FingerprintToken(token)

	s.mu.Lock()
	_, ok := s.sessions[hash]
	if ok {
		delete(s.sessions, hash)
	}
	s.mu.Unlock()

	if !ok {
		return ErrInvalidSession
	}

	s.Audit.Record(ctx, domain.AuditAdminLogout, "admin logout")
	return nil
}

// VerifySession reports whether the token maps to a live admin session.
// Implements httpx.SessionVerifier.
func (s *SessionService) VerifySession(token string) (string, bool) {
	hash := cryptox.FingerprintToken(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[hash]
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, hash)
		return "", false
	}
	return sess.email, true
}

// AccessViaToken runs the client access flow: resolve the bearer token, then
// assemble the read-only view. Failures come back as an AccessDenied result
// carrying a distinct user-facing reason rather than an error; every denial
// has already been audited by the token service.
func (s *SessionService) AccessViaToken(ctx context.Context, token string, now time.Time) (AccessResult, error) {
	client, err := s.Tokens.Resolve(ctx, token, now)
	if err != nil {
		reason, ok := denialReason(err)
		if !ok {
			return AccessResult{}, err
		}
		return AccessResult{State: domain.ViewAccessDenied, Reason: reason}, nil
	}

	view, err := s.Ledger.ClientView(ctx, client.ID)
	if err != nil {
		return AccessResult{}, err
	}

	return AccessResult{State: domain.ViewClientAuthenticated, View: view}, nil
}

func denialReason(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrTokenNotFound):
		return "Access token not found or invalid.", true
	case errors.Is(err, ErrTokenExpired):
		return fmt.Sprintf("The access link has expired (older than %s). Ask your administrator for a new one.", AccessTokenTTL), true
	case errors.Is(err, ErrClientNotFound):
		return "The client associated with this token no longer exists.", true
	default:
		return "", false
	}
}

func (s *SessionService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return s.SessionTTL
}
