package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ourstore/storefront-api/internal/api/metrics"
	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
	"github.com/ourstore/storefront-api/internal/core/service"
)

// sessionKey is the echo context key holding the decoded *domain.Session.
const sessionKey = "session"

// SessionGate decodes the auth cookie and enforces the route gate on every
// request. An absent, malformed, expired, or badly signed cookie is treated
// identically to no session: the gate fails closed. The decision itself is
// delegated to the pure Gate so this middleware only does cookie I/O and
// the redirect.
func SessionGate(auth ports.AuthService, gate *service.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *domain.Session
			if cookie, err := c.Cookie(domain.SessionCookieName); err == nil && cookie.Value != "" {
				sess = auth.DecodeSession(cookie.Value)
			}
			if sess != nil {
				c.Set(sessionKey, sess)
			}

			decision := gate.Decide(c.Request().URL.Path, c.QueryParam("redirect"), sess != nil)
			if decision.Action == service.GateRedirect {
				metrics.GateRedirectsTotal.Inc()
				return c.Redirect(http.StatusFound, decision.Location)
			}

			return next(c)
		}
	}
}

// Session returns the decoded session for the current request, or nil when
// the caller is unauthenticated.
func Session(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionKey).(*domain.Session)
	return sess
}
