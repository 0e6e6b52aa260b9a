package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("admin", "admin123", "secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(t)

	token, user, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "admin" || user.Role != domain.RoleAdmin || user.ID != 1 {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["username"] != "admin" {
		t.Fatalf("expected username admin, got %v", claims["username"])
	}
}

func TestAuthService_Login_Rejections(t *testing.T) {
	svc := newTestAuthService(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "admin123"},
		{"both wrong", "root", "toor"},
		{"both empty", "", ""},
		{"swapped fields", "admin123", "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, user, err := svc.Login(tc.username, tc.password)
			if err != domain.ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if token != "" || user != nil {
				t.Fatalf("no token or user may leak on failure: %q %+v", token, user)
			}
		})
	}
}

func TestAuthService_DecodeSession_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	token, _, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	sess := svc.DecodeSession(token)
	if sess == nil {
		t.Fatalf("expected session, got nil")
	}
	if sess.UserID != 1 || sess.Username != "admin" || sess.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestAuthService_DecodeSession_FailClosed(t *testing.T) {
	svc := newTestAuthService(t)

	other, err := NewAuthService("admin", "admin123", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	foreignToken, _, err := other.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Plain-JSON payload, as the cookie would carry in a legacy deployment.
	plainJSON := `{"userId":1,"username":"admin","role":"admin"}`

	// Token signed with "none" algorithm must be rejected.
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin", "role": "admin", "user_id": 1,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	expiredClaims := jwt.MapClaims{
		"username": "admin", "role": "admin", "user_id": 1,
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	for name, token := range map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"plain json":     plainJSON,
		"foreign secret": foreignToken,
		"alg none":       noneToken,
		"expired":        expiredToken,
	} {
		if sess := svc.DecodeSession(token); sess != nil {
			t.Fatalf("%s: expected nil session, got %+v", name, sess)
		}
	}
}

func TestAuthService_DecodeSession_MissingClaims(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if sess := svc.DecodeSession(token); sess != nil {
		t.Fatalf("expected nil for token without identity claims, got %+v", sess)
	}
}
