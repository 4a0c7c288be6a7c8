package http

import (
	"net/http"
	"strconv"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// AuditHandler exposes the audit trail to the admin.
type AuditHandler struct {
	AuditService *service.AuditService
}

// HandleList handles GET /v1/audit. An optional ?limit= caps the number of
// entries; otherwise the whole retained window comes back, newest first.
func (h *AuditHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.AuditService.Recent(ctx, limit)
	if err != nil {
		log.Error("failed to list audit entries", "error", err)
		writeServiceError(w, err)
		return
	}

	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			Timestamp: e.Timestamp,
			Action:    string(e.Action),
			Detail:    e.Detail,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
