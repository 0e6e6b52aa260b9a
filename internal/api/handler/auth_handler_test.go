package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(username, password string) (string, *domain.User, error)
	decodeFn func(token string) *domain.Session
}

func (s *stubAuthService) Login(username, password string) (string, *domain.User, error) {
	return s.loginFn(username, password)
}

func (s *stubAuthService) DecodeSession(token string) *domain.Session {
	if s.decodeFn == nil {
		return nil
	}
	return s.decodeFn(token)
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(username, password string) (string, *domain.User, error) {
			if username != "admin" || password != "admin123" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "signed-token", &domain.User{ID: 1, Username: "admin", Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success, got %v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "admin" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}

	cookie := findCookie(t, rec, domain.SessionCookieName)
	if cookie.Value != "signed-token" {
		t.Fatalf("cookie carries %q, want token", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie must be SameSite=Lax")
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("cookie MaxAge = %d, want 86400", cookie.MaxAge)
	}
	if cookie.Secure {
		t.Fatalf("Secure flag must follow the environment switch (off here)")
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q, want /", cookie.Path)
	}
}

func TestAuthHandler_Login_SecureCookieInProduction(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(username, password string) (string, *domain.User, error) {
			return "tok", &domain.User{ID: 1, Username: "admin", Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub, true)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if cookie := findCookie(t, rec, domain.SessionCookieName); !cookie.Secure {
		t.Fatalf("expected Secure cookie in production")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(username, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = handler.Login(e.NewContext(req, rec))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false || resp["error"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", resp)
	}

	res := rec.Result()
	defer res.Body.Close()
	if len(res.Cookies()) != 0 {
		t.Fatalf("no cookie may be set on failed login")
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(username, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = handler.Login(e.NewContext(req, rec))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Login failed" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	if err := handler.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, domain.SessionCookieName)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/login" {
		t.Fatalf("expected redirect signal to /login, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{}, false)

	// Without a session.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	if err := handler.Me(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	// With a session injected the way the gate middleware does it.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", &domain.Session{UserID: 1, Username: "admin", Role: "admin"})
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "admin" {
		t.Fatalf("unexpected user payload: %v", resp["user"])
	}
}
