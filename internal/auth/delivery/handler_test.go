package delivery_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classificador-web/internal/auth/delivery"
	"classificador-web/pkg/backend"
	"classificador-web/web"
)

type backendMock struct {
	server *httptest.Server
	calls  atomic.Int64
}

func newBackendMock(t *testing.T, handler http.HandlerFunc) *backendMock {
	t.Helper()
	mock := &backendMock{}
	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(mock.server.Close)
	return mock
}

func newRouter(mockURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	client := backend.NewClient(mockURL, 2*time.Second, zap.NewNop())
	handler := delivery.NewAuthHandler(client, zap.NewNop())

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.GET("/login", handler.ShowLogin)
	r.POST("/login", handler.Login)
	r.POST("/logout", handler.Logout)
	r.POST("/recuperar", handler.RecoverPassword)
	r.GET("/registrar", handler.ShowRegister)
	r.POST("/registrar", handler.Register)
	r.GET("/resetar-senha", handler.ShowResetPassword)
	r.POST("/resetar-senha", handler.ResetPassword)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccessRelaysSessionCookie(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"message": "Login realizado com sucesso"})
	})
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/login", url.Values{"email": {"ana@example.com"}, "senha": {"s3nh4"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/classificacao" {
		t.Errorf("redirect: got %q, want /classificacao", location)
	}
	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "session=abc123") {
		t.Errorf("session cookie not relayed, got %q", setCookie)
	}
}

func TestLoginFailureRendersBackendMessage(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
	})
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/login", url.Values{"email": {"ana@example.com"}, "senha": {"errada"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Credenciais inválidas") {
		t.Error("backend error message missing")
	}
	// The typed address stays in the field
	if !strings.Contains(body, "ana@example.com") {
		t.Error("submitted email not preserved")
	}
}

func TestLoginEmptyFieldsBlockWithoutRequest(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/login", url.Values{"email": {"ana@example.com"}})

	if !strings.Contains(rec.Body.String(), "Por favor, preencha todos os campos.") {
		t.Error("validation message missing")
	}
	if mock.calls.Load() != 0 {
		t.Errorf("backend calls: got %d, want 0", mock.calls.Load())
	}
}

func TestShowLoginRendersResetFlash(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newRouter(mock.server.URL)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/login?redefinida=1&email=ana%40example.com", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Senha redefinida com sucesso! Faça login com a nova senha.") {
		t.Error("flash message missing")
	}
	if !strings.Contains(body, "ana@example.com") {
		t.Error("email not prefilled")
	}
}

func TestRecoverPasswordGenericOnSuccessAndRejection(t *testing.T) {
	generic := "Se o e-mail estiver cadastrado, você receberá um link de recuperação em instantes."

	for name, status := range map[string]int{"accepted": 200, "rejected": 404} {
		t.Run(name, func(t *testing.T) {
			mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(map[string]string{"error": "E-mail não encontrado"})
			})
			r := newRouter(mock.server.URL)

			req := httptest.NewRequest("POST", "/recuperar", strings.NewReader(`{"email":"ana@example.com"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), generic) {
				t.Error("generic recovery message missing")
			}
			if strings.Contains(rec.Body.String(), "não encontrado") {
				t.Error("backend rejection leaked to the browser")
			}
		})
	}
}

func TestRecoverPasswordConnectionError(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {})
	mock.server.Close()
	r := newRouter(mock.server.URL)

	req := httptest.NewRequest("POST", "/recuperar", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rec.Code)
	}
}

func TestRegisterSuccessRendersRedirectNotice(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/registrar", url.Values{
		"email":         {"ana@example.com"},
		"senha":         {"s3nh4"},
		"smtp_password": {"app-pass"},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "Conta criada com sucesso! Redirecionando...") {
		t.Error("success message missing")
	}
	if !strings.Contains(body, `data-redirect="/login"`) {
		t.Error("redirect marker missing")
	}
}

func TestShowResetPasswordWithoutTokenBlocksForm(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newRouter(mock.server.URL)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/resetar-senha", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Token de recuperação não encontrado na URL.") {
		t.Error("missing token message not rendered")
	}
	if !strings.Contains(body, "disabled") {
		t.Error("submit button not disabled")
	}
	if mock.calls.Load() != 0 {
		t.Errorf("backend calls: got %d, want 0", mock.calls.Load())
	}
}

func TestResetPasswordMismatchBlocksWithoutRequest(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/resetar-senha", url.Values{
		"token":                {"tok-1"},
		"nova_senha":           {"uma"},
		"confirmar_nova_senha": {"outra"},
	})

	if !strings.Contains(rec.Body.String(), "As senhas não coincidem.") {
		t.Error("mismatch message missing")
	}
	if mock.calls.Load() != 0 {
		t.Errorf("backend calls: got %d, want 0", mock.calls.Load())
	}
}

func TestResetPasswordSuccessRedirectsWithEmail(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"email": "ana@example.com"})
	})
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/resetar-senha", url.Values{
		"token":                {"tok-1"},
		"nova_senha":           {"novasenha"},
		"confirmar_nova_senha": {"novasenha"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	location := rec.Header().Get("Location")
	if location != "/login?redefinida=1&email=ana%40example.com" {
		t.Errorf("redirect: got %q", location)
	}
}

func TestLogoutRedirectsEvenWhenBackendDown(t *testing.T) {
	mock := newBackendMock(t, func(w http.ResponseWriter, r *http.Request) {})
	mock.server.Close()
	r := newRouter(mock.server.URL)

	rec := postForm(r, "/logout", url.Values{})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/login" {
		t.Errorf("redirect: got %q, want /login", location)
	}
}
