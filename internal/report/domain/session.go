package domain

// ViewState is what a caller may observe after authentication.
type ViewState string

const (
	ViewLoggedOut           ViewState = "logged_out"
	ViewAdminAuthenticated  ViewState = "admin"
	ViewClientAuthenticated ViewState = "client"
	ViewAccessDenied        ViewState = "denied"
)
