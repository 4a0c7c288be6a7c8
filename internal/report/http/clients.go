package http

import (
	"encoding/json"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// ClientsHandler handles client management and access link issuance.
type ClientsHandler struct {
	LedgerService *service.LedgerService
	TokenService  *service.TokenService
}

// HandleCreate handles POST /v1/clients.
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	client, err := h.LedgerService.CreateClient(r.Context(), req.Name, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clientResponse(client))
}

// HandleList handles GET /v1/clients.
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clients, err := h.LedgerService.ListClients(ctx)
	if err != nil {
		log.Error("failed to list clients", "error", err)
		writeServiceError(w, err)
		return
	}

	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = clientResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleIssueLink handles POST /v1/clients/{id}/link. The plaintext token is
// returned once and never recoverable afterwards.
func (h *ClientsHandler) HandleIssueLink(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	grant, err := h.TokenService.Issue(r.Context(), clientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, IssueLinkResponse{
		Link:      h.TokenService.PortalLink(grant.Token),
		Token:     grant.Token,
		ExpiresAt: grant.ExpiresAt,
	})
}
