package domain

import "time"

// AccessToken models a stored client access credential. The opaque token
// itself is never persisted; only its SHA-256 fingerprint is.
type AccessToken struct {
	ID        string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ClientID  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AccessGrant is what issuing a token returns: the plaintext credential is
// shown once and never recoverable afterwards.
type AccessGrant struct {
	Token     string
	ClientID  string
	ExpiresAt time.Time
}
