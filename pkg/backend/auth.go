package backend

import (
	"context"
	"net/http"
)

// Login authenticates and returns the session cookies the backend set,
// so the caller can relay them to the browser.
func (c *Client) Login(ctx context.Context, email, senha string) ([]*http.Cookie, error) {
	req, err := jsonRequest(http.MethodPost, "/api/login", loginRequest{Email: email, Senha: senha}, Session{})
	if err != nil {
		return nil, err
	}
	_, cookies, err := do[StatusResponse](ctx, c, req)
	return cookies, err
}

// Logout ends the backend session. Expired cookies from the response are
// returned for relay.
func (c *Client) Logout(ctx context.Context, s Session) ([]*http.Cookie, error) {
	_, cookies, err := do[StatusResponse](ctx, c, request{
		method:  http.MethodPost,
		path:    "/api/logout",
		session: s,
	})
	return cookies, err
}

// Register creates an account. The smtp password is used by the backend
// to send mail on the user's behalf; it passes through untouched.
func (c *Client) Register(ctx context.Context, email, senha, smtpPassword string) error {
	req, err := jsonRequest(http.MethodPost, "/api/register", registerRequest{Email: email, Senha: senha, SMTPPassword: smtpPassword}, Session{})
	if err != nil {
		return err
	}
	_, _, err = do[StatusResponse](ctx, c, req)
	return err
}

// RecoverPassword asks the backend to send a recovery email. The backend
// answers generically whether or not the address is registered.
func (c *Client) RecoverPassword(ctx context.Context, email string) (StatusResponse, error) {
	req, err := jsonRequest(http.MethodPost, "/api/recuperar", recoverPasswordRequest{Email: email}, Session{})
	if err != nil {
		return StatusResponse{}, err
	}
	status, _, err := do[StatusResponse](ctx, c, req)
	return status, err
}

// ResetPassword redeems a recovery token for a new password and returns
// the account email for login prefill.
func (c *Client) ResetPassword(ctx context.Context, token, novaSenha, confirmarNovaSenha string) (ResetPasswordResult, error) {
	req, err := jsonRequest(http.MethodPost, "/api/resetar-senha", resetPasswordRequest{
		Token:              token,
		NovaSenha:          novaSenha,
		ConfirmarNovaSenha: confirmarNovaSenha,
	}, Session{})
	if err != nil {
		return ResetPasswordResult{}, err
	}
	result, _, err := do[ResetPasswordResult](ctx, c, req)
	return result, err
}
