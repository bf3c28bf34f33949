package delivery

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdto "classificador-web/internal/auth/dto"
	"classificador-web/pkg/backend"
)

const (
	msgConnection      = "Erro ao conectar ao servidor. Verifique sua conexão ou o status do backend."
	msgFillAllFields   = "Por favor, preencha todos os campos."
	msgRecoveryGeneric = "Se o e-mail estiver cadastrado, você receberá um link de recuperação em instantes."
)

type AuthHandler struct {
	client *backend.Client
	log    *zap.Logger
}

func NewAuthHandler(client *backend.Client, log *zap.Logger) *AuthHandler {
	return &AuthHandler{client: client, log: log}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	view := authdto.LoginView{Email: c.Query("email")}
	if c.Query("redefinida") == "1" {
		view.Flash = "Senha redefinida com sucesso! Faça login com a nova senha."
	}
	c.HTML(http.StatusOK, "login.html", view)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	senha := c.PostForm("senha")
	view := authdto.LoginView{Email: email}

	if email == "" || senha == "" {
		view.Error = msgFillAllFields
		c.HTML(http.StatusOK, "login.html", view)
		return
	}

	cookies, err := h.client.Login(c.Request.Context(), email, senha)
	if err != nil {
		if backend.IsConnectionError(err) {
			view.Error = msgConnection
		} else {
			view.Error = backend.Message(err, "E-mail ou senha incorretos.")
		}
		c.HTML(http.StatusOK, "login.html", view)
		return
	}

	for _, ck := range cookies {
		http.SetCookie(c.Writer, ck)
	}
	c.Redirect(http.StatusSeeOther, "/classificacao")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookies, err := h.client.Logout(c.Request.Context(), backend.SessionFrom(c.Request))
	if err != nil {
		// Session is gone either way; the browser still lands on login.
		h.log.Warn("logout failed", zap.Error(err))
	}
	for _, ck := range cookies {
		http.SetCookie(c.Writer, ck)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// RecoverPassword never reveals whether the address is registered: any
// answer from the backend, accepted or rejected, renders the same
// generic message. Only an unreachable backend reads differently.
func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	var req authdto.RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Por favor, informe seu e-mail."})
		return
	}

	_, err := h.client.RecoverPassword(c.Request.Context(), req.Email)
	if err != nil && backend.IsConnectionError(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": msgConnection})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgRecoveryGeneric})
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "registrar.html", authdto.RegisterView{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	senha := c.PostForm("senha")
	smtpPassword := c.PostForm("smtp_password")
	view := authdto.RegisterView{Email: email}

	if email == "" || senha == "" {
		view.Error = msgFillAllFields
		c.HTML(http.StatusOK, "registrar.html", view)
		return
	}

	if err := h.client.Register(c.Request.Context(), email, senha, smtpPassword); err != nil {
		if backend.IsConnectionError(err) {
			view.Error = msgConnection
		} else {
			view.Error = backend.Message(err, "Erro ao criar conta.")
		}
		c.HTML(http.StatusOK, "registrar.html", view)
		return
	}

	// The template schedules the redirect to /login after 2s.
	view.Success = "Conta criada com sucesso! Redirecionando..."
	c.HTML(http.StatusOK, "registrar.html", view)
}

func (h *AuthHandler) ShowResetPassword(c *gin.Context) {
	view := authdto.ResetPasswordView{Token: c.Query("token")}
	if view.Token == "" {
		view.Blocked = true
		view.Error = "Token de recuperação não encontrado na URL."
	}
	c.HTML(http.StatusOK, "resetar_senha.html", view)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	novaSenha := c.PostForm("nova_senha")
	confirmar := c.PostForm("confirmar_nova_senha")
	view := authdto.ResetPasswordView{Token: token}

	switch {
	case token == "":
		view.Blocked = true
		view.Error = "Token de recuperação inválido ou ausente."
	case novaSenha == "" || confirmar == "":
		view.Error = msgFillAllFields
	case novaSenha != confirmar:
		view.Error = "As senhas não coincidem."
	}
	if view.Error != "" {
		c.HTML(http.StatusOK, "resetar_senha.html", view)
		return
	}

	result, err := h.client.ResetPassword(c.Request.Context(), token, novaSenha, confirmar)
	if err != nil {
		if backend.IsConnectionError(err) {
			view.Error = "Erro de conexão com o servidor. Tente novamente."
		} else {
			view.Error = backend.Message(err, "Erro ao redefinir a senha. Token inválido ou expirado.")
		}
		c.HTML(http.StatusOK, "resetar_senha.html", view)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?redefinida=1&email="+url.QueryEscape(result.Email))
}
