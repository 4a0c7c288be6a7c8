package http

import (
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
)

// Request/response payloads for the admin and portal surfaces. Monetary
// amounts travel as integer minor units plus a pre-formatted display string.

type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	SessionToken string `json:"session_token"`
}

type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProjectRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Budget   int64  `json:"budget"` // minor units
	Status   string `json:"status,omitempty"`
}

type SetProjectStatusRequest struct {
	Status string `json:"status"`
}

type ProjectResponse struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	Budget         int64     `json:"budget"`
	BudgetDisplay  string    `json:"budget_display"`
	Balance        int64     `json:"balance"`
	BalanceDisplay string    `json:"balance_display"`
	CreatedAt      time.Time `json:"created_at"`
}

type RecordPaymentRequest struct {
	ProjectID string `json:"project_id"`
	Amount    int64  `json:"amount"` // minor units
	Kind      string `json:"kind,omitempty"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	PaidAt        time.Time `json:"paid_at"`
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Kind          string    `json:"kind"`
}

type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Balance int64           `json:"balance"`
	Status  string          `json:"status"`
	Warning string          `json:"warning,omitempty"`
}

type IssueLinkResponse struct {
	Link      string    `json:"link"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SummaryResponse struct {
	TotalBudget     int64  `json:"total_budget"`
	TotalPaid       int64  `json:"total_paid"`
	TotalPending    int64  `json:"total_pending"`
	ProgressPercent int    `json:"progress_percent"`
	TotalDisplay    string `json:"total_budget_display"`
	PaidDisplay     string `json:"total_paid_display"`
	PendingDisplay  string `json:"total_pending_display"`
}

type PortalResponse struct {
	Client   ClientResponse    `json:"client"`
	Projects []ProjectResponse `json:"projects"`
	Payments []PaymentResponse `json:"payments"`
	Summary  SummaryResponse   `json:"summary"`
}

type AuditEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
	Checks  any    `json:"checks,omitempty"`
}

func clientResponse(c domain.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt}
}

func projectResponse(p domain.Project, currency string) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		ClientID:       p.ClientID,
		Name:           p.Name,
		Status:         string(p.Status),
		Budget:         p.Budget,
		BudgetDisplay:  display(p.Budget, currency),
		Balance:        p.Balance,
		BalanceDisplay: display(p.Balance, currency),
		CreatedAt:      p.CreatedAt,
	}
}

func paymentResponse(p domain.Payment, currency string) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ProjectID:     p.ProjectID,
		PaidAt:        p.PaidAt,
		Amount:        p.Amount,
		AmountDisplay: display(p.Amount, currency),
		Kind:          p.Kind,
	}
}

func summaryResponse(s domain.Summary, currency string) SummaryResponse {
	return SummaryResponse{
		TotalBudget:     s.TotalBudget,
		TotalPaid:       s.TotalPaid,
		TotalPending:    s.TotalPending,
		ProgressPercent: s.ProgressPercent,
		TotalDisplay:    display(s.TotalBudget, currency),
		PaidDisplay:     display(s.TotalPaid, currency),
		PendingDisplay:  display(s.TotalPending, currency),
	}
}
