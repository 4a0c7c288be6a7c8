package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
)

// SessionHandler handles admin login and logout.
type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleLogin handles POST /v1/session.
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	token, err := h.SessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{SessionToken: token})
}

// HandleLogout handles DELETE /v1/session. The session middleware has
// already verified the bearer token; here we just end it.
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	if err := h.SessionService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
