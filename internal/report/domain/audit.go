package domain

import "time"

// AuditAction labels a security- or mutation-relevant event.
type AuditAction string

const (
	AuditClientCreate   AuditAction = "CLIENT_CREATE"
	AuditProjectCreate  AuditAction = "PROJECT_CREATE"
	AuditProjectStatus  AuditAction = "PROJECT_STATUS"
	AuditPaymentCreate  AuditAction = "PAYMENT_CREATE"
	AuditLinkGenerated  AuditAction = "LINK_GENERATED"
	AuditClientAccess   AuditAction = "CLIENT_ACCESS"
	AuditAccessDenied   AuditAction = "ACCESS_DENIED"
	AuditAdminLogin     AuditAction = "ADMIN_LOGIN"
	AuditAdminLoginFail AuditAction = "ADMIN_LOGIN_FAIL"
	AuditAdminLogout    AuditAction = "ADMIN_LOGOUT"
)

// AuditEntry is one record in the bounded audit ring.
type AuditEntry struct {
	ID        int64
	Timestamp time.Time
	Action    AuditAction
	Detail    string
}
