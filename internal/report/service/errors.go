package service

import "errors"

var (
	// ErrValidation wraps malformed or missing input; nothing was mutated.
	ErrValidation = errors.New("invalid_input")

	ErrClientNotFound  = errors.New("client_not_found")
	ErrProjectNotFound = errors.New("project_not_found")
	ErrTokenNotFound   = errors.New("token_not_found")
	ErrTokenExpired    = errors.New("token_expired")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
)
