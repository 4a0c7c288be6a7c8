package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/store"
	"github.com/clientdesk/clientdesk/pkg/idx"
	"github.com/clientdesk/clientdesk/pkg/moneyx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// LedgerService owns the client / project / payment lifecycles and the
// balance derivation rules. Audit entries are recorded after the mutation
// commits, so the log order matches completion order.
type LedgerService struct {
	Store    store.Store
	Audit    *AuditService
	Currency string // ISO 4217 code used for display formatting
}

// PaymentResult is what recording a payment returns. Warning is non-empty
// when the payment exceeded the remaining balance and the balance was
// clamped to zero; the mutation still succeeded.
type PaymentResult struct {
	Payment domain.Payment
	Balance int64
	Status  domain.ProjectStatus
	Warning string
}

func (s *LedgerService) CreateClient(ctx context.Context, name, email string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return domain.Client{}, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if email == "" {
		return domain.Client{}, fmt.Errorf("%w: client email is required", ErrValidation)
	}

	client := domain.Client{
		ID:        idx.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Clients().CreateClient(ctx, client); err != nil {
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	s.Audit.Record(ctx, domain.AuditClientCreate, fmt.Sprintf("client created: %s", client.Name))
	l.Info("client created", "client_id", client.ID, "name", client.Name)
	return client, nil
}

func (s *LedgerService) CreateProject(
	ctx context.Context,
	clientID, name string,
	budget int64,
	status domain.ProjectStatus,
) (domain.Project, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Project{}, fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if budget <= 0 {
		return domain.Project{}, fmt.Errorf("%w: project budget must be positive", ErrValidation)
	}
	if status == "" {
		status = domain.ProjectActive
	}
	if !status.Valid() {
		return domain.Project{}, fmt.Errorf("%w: unknown project status %q", ErrValidation, status)
	}

	if _, err := s.Store.Clients().GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, fmt.Errorf("%w: project client %s", ErrValidation, clientID)
		}
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:        idx.New().String(),
		ClientID:  clientID,
		Name:      name,
		Status:    status,
		Budget:    budget,
		Balance:   budget, // balance starts equal to budget
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Projects().CreateProject(ctx, project); err != nil {
		l.Error("failed to create project", "error", err)
		return domain.Project{}, err
	}

	s.Audit.Record(ctx, domain.AuditProjectCreate,
		fmt.Sprintf("project created: %s (client: %s)", project.Name, clientID))
	l.Info("project created", "project_id", project.ID, "client_id", clientID)
	return project, nil
}

// RecordPayment registers a payment against a project and settles the new
// balance. A payment larger than the remaining balance is accepted: the
// balance is clamped to zero and the caller gets a warning instead of an
// error. When the balance reaches zero the project is closed. The whole
// read-modify-write runs in one transaction so concurrent admins cannot lose
// updates.
func (s *LedgerService) RecordPayment(
	ctx context.Context,
	projectID string,
	amount int64,
	kind string,
) (PaymentResult, error) {
	l := slogx.FromContext(ctx)

	if amount <= 0 {
		return PaymentResult{}, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = "Payment"
	}

	var result PaymentResult

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		project, err := tx.Projects().GetProjectByID(ctx, projectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: payment project %s", ErrValidation, projectID)
			}
			return err
		}

		now := time.Now().UTC()
		payment := domain.Payment{
			ID:        idx.New().String(),
			ProjectID: project.ID,
			PaidAt:    now,
			Amount:    amount,
			Kind:      kind,
			CreatedAt: now,
		}
		if err := tx.Payments().CreatePayment(ctx, payment); err != nil {
			return err
		}

		balance := project.Balance - amount
		if balance < 0 {
			balance = 0
			result.Warning = fmt.Sprintf(
				"payment %s exceeds the project's remaining balance %s; balance clamped to zero",
				moneyx.Format(amount, s.currency()),
				moneyx.Format(project.Balance, s.currency()),
			)
		}

		status := project.Status
		if balance == 0 {
			status = domain.ProjectClosed
		}
		if err := tx.Projects().UpdateProjectBalance(ctx, project.ID, balance, status); err != nil {
			return err
		}

		result.Payment = payment
		result.Balance = balance
		result.Status = status
		return nil
	})
	if err != nil {
		return PaymentResult{}, err
	}

	s.Audit.Record(ctx, domain.AuditPaymentCreate,
		fmt.Sprintf("payment of %s recorded for project: %s",
			moneyx.Format(amount, s.currency()), projectID))
	l.Info("payment recorded",
		"project_id", projectID,
		"amount", amount,
		"balance", result.Balance,
		"clamped", result.Warning != "",
	)
	return result, nil
}

// SetProjectStatus is the explicit admin override: close a project with a
// positive balance, or reopen a closed one.
func (s *LedgerService) SetProjectStatus(
	ctx context.Context,
	projectID string,
	status domain.ProjectStatus,
) (domain.Project, error) {
	if !status.Valid() {
		return domain.Project{}, fmt.Errorf("%w: unknown project status %q", ErrValidation, status)
	}

	if err := s.Store.Projects().UpdateProjectStatus(ctx, projectID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
		}
		return domain.Project{}, err
	}

	s.Audit.Record(ctx, domain.AuditProjectStatus,
		fmt.Sprintf("project %s status set to %s", projectID, status))
	return s.Store.Projects().GetProjectByID(ctx, projectID)
}

// ClientView assembles the read-only snapshot the client portal shows: the
// client, its projects, and every payment of those projects in insertion
// order. Calling it twice with no intervening mutation yields identical data.
func (s *LedgerService) ClientView(ctx context.Context, clientID string) (domain.ClientView, error) {
	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ClientView{}, fmt.Errorf("%w: %s", ErrClientNotFound, clientID)
		}
		return domain.ClientView{}, err
	}

	projects, err := s.Store.Projects().ListProjectsByClient(ctx, clientID)
	if err != nil {
		return domain.ClientView{}, err
	}
	payments, err := s.Store.Payments().ListPaymentsByClient(ctx, clientID)
	if err != nil {
		return domain.ClientView{}, err
	}

	return domain.ClientView{
		Client:   client,
		Projects: projects,
		Payments: payments,
		Summary:  domain.Summarize(projects, payments),
	}, nil
}

// ListClients returns all clients; plain read, no side effects.
func (s *LedgerService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// ListProjects returns all projects; plain read, no side effects.
func (s *LedgerService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

// ListPayments returns all payments; plain read, no side effects.
func (s *LedgerService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.Store.Payments().ListPayments(ctx)
}

// Overview computes the derived metrics across the whole ledger for the
// admin dashboard.
func (s *LedgerService) Overview(ctx context.Context) (domain.Summary, error) {
	projects, err := s.Store.Projects().ListProjects(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	payments, err := s.Store.Payments().ListPayments(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(projects, payments), nil
}

func (s *LedgerService) currency() string {
	if s.Currency == "" {
		return "USD"
	}
	return s.Currency
}
