package store

import (
	"context"
	"errors"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Clients() Clients
	Projects() Projects
	Payments() Payments
	AccessTokens() AccessTokens
	AuditLog() AuditLog

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// CreateClient inserts a new client (id is provided by app via ULID).
	CreateClient(ctx context.Context, c domain.Client) error

	// GetClientByID returns a client by id.
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// ListClients returns all clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type Projects interface {
	// CreateProject inserts a new project; balance must equal budget.
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProjectByID returns a project by id.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// ListProjects returns all projects in insertion order.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// ListProjectsByClient returns the client's projects in insertion order.
	ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error)

	// UpdateProjectBalance sets the remaining balance and status together so
	// the closed-on-zero rule is applied atomically with the balance write.
	UpdateProjectBalance(ctx context.Context, id string, balance int64, status domain.ProjectStatus) error

	// UpdateProjectStatus sets only the status (admin override / reopen).
	UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) error
}

type Payments interface {
	// CreatePayment inserts an immutable payment record.
	CreatePayment(ctx context.Context, p domain.Payment) error

	// ListPayments returns all payments in insertion order.
	ListPayments(ctx context.Context) ([]domain.Payment, error)

	// ListPaymentsByClient returns payments whose project belongs to the
	// client, in insertion order.
	ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
}

type AccessTokens interface {
	// CreateAccessToken stores a new access token record (hash only).
	CreateAccessToken(ctx context.Context, t domain.AccessToken) error

	// GetAccessTokenByHash returns the token record by its fingerprint.
	GetAccessTokenByHash(ctx context.Context, hash string) (domain.AccessToken, error)

	// DeleteClientAccessTokens removes every token for a client, expired or
	// not. Called when a new link is issued so only the latest link resolves.
	DeleteClientAccessTokens(ctx context.Context, clientID string) error

	// DeleteExpiredAccessTokens is housekeeping.
	DeleteExpiredAccessTokens(ctx context.Context, now time.Time) error
}

type AuditLog interface {
	// AppendAuditEntry writes one entry.
	AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error

	// TrimAuditLog evicts the oldest entries beyond keep.
	TrimAuditLog(ctx context.Context, keep int) error

	// ListAuditEntries returns up to limit entries, newest first.
	ListAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error)

	// CountAuditEntries returns the number of retained entries.
	CountAuditEntries(ctx context.Context) (int, error)
}
