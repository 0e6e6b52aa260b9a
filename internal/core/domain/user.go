package domain

import "errors"

const RoleAdmin = "admin"

// SessionCookieName is the browser cookie carrying the signed session token.
const SessionCookieName = "auth-token"

var ErrInvalidCredentials = errors.New("invalid credentials")

// User models the authenticated actor. The deployment has exactly one:
// the static admin credential configured at process start.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the decoded payload of a valid session token. The signed
// cookie is the only session state; there is no server-side session table.
// A Session value is only ever produced from a token issued after a
// successful login.
type Session struct {
	UserID   int
	Username string
	Role     string
}
