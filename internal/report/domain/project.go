package domain

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectClosed ProjectStatus = "closed"
)

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	return s == ProjectActive || s == ProjectClosed
}

// Project tracks a client engagement. Budget is fixed at creation; Balance
// starts equal to Budget and only decreases as payments land. The invariant
// 0 <= Balance <= Budget holds at all times.
type Project struct {
	ID        string
	ClientID  string
	Name      string
	Status    ProjectStatus
	Budget    int64 // minor units (cents)
	Balance   int64 // minor units, remaining unpaid portion of Budget
	CreatedAt time.Time
}
