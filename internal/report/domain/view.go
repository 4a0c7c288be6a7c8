package domain

// ClientView is the read-only snapshot a client sees through the portal:
// the client record, its projects, and every payment belonging to those
// projects, in stable insertion order.
type ClientView struct {
	Client   Client
	Projects []Project
	Payments []Payment
	Summary  Summary
}
