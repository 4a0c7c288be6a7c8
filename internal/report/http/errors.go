package http

import (
	"errors"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/moneyx"
)

// writeServiceError maps service errors onto HTTP statuses with a uniform
// JSON body.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrTokenNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrTokenExpired):
		httpx.WriteError(w, http.StatusForbidden, "token_expired", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	case errors.Is(err, service.ErrInvalidSession):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_session", "Session is not valid")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal error")
	}
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
}

func display(minor int64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return moneyx.Format(minor, currency)
}
