package domain

import "time"

// Payment is an immutable record of money received against a project.
// Payments are never edited or deleted.
type Payment struct {
	ID        string
	ProjectID string
	PaidAt    time.Time
	Amount    int64  // minor units (cents), always positive
	Kind      string // free-form label, e.g. "Initial", "Milestone", "Final"
	CreatedAt time.Time
}
