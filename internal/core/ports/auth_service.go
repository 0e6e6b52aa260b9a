package ports

import (
	"github.com/ourstore/storefront-api/internal/core/domain"
)

// AuthService checks the static admin credential and manages session tokens.
// Neither operation performs I/O, so no context is threaded through.
type AuthService interface {
	// Login compares username and password against the configured credential
	// and, on match, returns a signed session token plus the user it
	// represents. A mismatch on either field yields ErrInvalidCredentials
	// with no indication of which field was wrong.
	Login(username, password string) (string, *domain.User, error)

	// DecodeSession verifies and decodes a session token. Malformed, badly
	// signed, or expired tokens all decode to nil; decoding never fails
	// with an error the caller could accidentally treat as a session.
	DecodeSession(token string) *domain.Session
}
