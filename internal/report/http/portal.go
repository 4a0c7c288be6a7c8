package http

import (
	"net/http"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// PortalHandler serves the read-only client portal reached via an access
// link. It is the only unauthenticated surface besides health checks.
type PortalHandler struct {
	SessionService *service.SessionService
	LedgerService  *service.LedgerService
}

// HandleAccess handles GET /v1/portal/{token}. A denied access attempt gets a
// 403 with a human-readable reason; the response is never cacheable since the
// token in the URL is a credential.
func (h *PortalHandler) HandleAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	httpx.NoCache(w)

	result, err := h.SessionService.AccessViaToken(ctx, r.PathValue("token"), time.Now().UTC())
	if err != nil {
		log.Error("portal access failed", "error", err)
		writeServiceError(w, err)
		return
	}

	if result.State == domain.ViewAccessDenied {
		httpx.WriteError(w, http.StatusForbidden, "access_denied", result.Reason)
		return
	}

	currency := h.LedgerService.Currency

	projects := make([]ProjectResponse, len(result.View.Projects))
	for i, p := range result.View.Projects {
		projects[i] = projectResponse(p, currency)
	}
	payments := make([]PaymentResponse, len(result.View.Payments))
	for i, p := range result.View.Payments {
		payments[i] = paymentResponse(p, currency)
	}

	httpx.WriteJSON(w, http.StatusOK, PortalResponse{
		Client:   clientResponse(result.View.Client),
		Projects: projects,
		Payments: payments,
		Summary:  summaryResponse(result.View.Summary, currency),
	})
}
