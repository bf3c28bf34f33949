package dto

// LoginView is the state of one render of the login page. A fresh value
// is built per request; nothing is shared across views.
type LoginView struct {
	Email string
	Error string
	Flash string
}

type RegisterView struct {
	Email   string
	Error   string
	Success string
}

// ResetPasswordView blocks the form entirely when the recovery token is
// missing from the navigation context.
type ResetPasswordView struct {
	Token   string
	Blocked bool
	Error   string
}

// RecoverPasswordRequest is posted by the forgot-password panel.
type RecoverPasswordRequest struct {
	Email string `json:"email"`
}
