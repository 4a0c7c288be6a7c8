package http

import (
	"encoding/json"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// PaymentsHandler records and lists payments.
type PaymentsHandler struct {
	LedgerService *service.LedgerService
}

// HandleCreate handles POST /v1/payments. An excess payment still succeeds;
// the response carries the warning alongside the settled balance.
func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	result, err := h.LedgerService.RecordPayment(r.Context(), req.ProjectID, req.Amount, req.Kind)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RecordPaymentResponse{
		Payment: paymentResponse(result.Payment, h.LedgerService.Currency),
		Balance: result.Balance,
		Status:  string(result.Status),
		Warning: result.Warning,
	})
}

// HandleList handles GET /v1/payments.
func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	payments, err := h.LedgerService.ListPayments(ctx)
	if err != nil {
		log.Error("failed to list payments", "error", err)
		writeServiceError(w, err)
		return
	}

	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = paymentResponse(p, h.LedgerService.Currency)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
