package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// SessionVerifier validates an opaque session token and returns the identity
// it belongs to.
type SessionVerifier interface {
	VerifySession(token string) (identity string, ok bool)
}

// RequireSession rejects requests that do not carry a valid bearer session
// token. On success the identity is injected into the request context.
func RequireSession(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			identity, ok := v.VerifySession(raw)
			if !ok {
				log.Warn("session verification failed")
				writeBearerError(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), CtxKeyAdmin, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
