package service

import (
	"net/url"
	"strings"
)

// GateAction is the outcome of a route-gate decision.
type GateAction int

const (
	GateAllow GateAction = iota
	GateRedirect
)

// GateDecision tells the transport layer what to do with a request.
// Location is only meaningful when Action is GateRedirect.
type GateDecision struct {
	Action   GateAction
	Location string
}

// Gate decides, per request, whether a caller may reach a path. It is a pure
// function of the path and session presence: cookie reading and the redirect
// itself belong to the middleware, which keeps this testable without HTTP.
type Gate struct {
	protectedPrefixes []string
	authRoutes        []string
	loginPath         string
	defaultTarget     string
}

// NewGate returns a Gate with this deployment's fixed route sets. The
// protected set is an enumerated prefix list, not a pattern language.
func NewGate() *Gate {
	return &Gate{
		protectedPrefixes: []string{"/admin", "/api/admin"},
		authRoutes:        []string{"/login"},
		loginPath:         "/login",
		defaultTarget:     "/admin",
	}
}

// IsProtected reports whether path starts with a protected prefix.
func (g *Gate) IsProtected(path string) bool {
	for _, prefix := range g.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Decide evaluates the three-state gate:
//
//   - protected path without a session redirects to the login route,
//     carrying the original path so login can return the caller there;
//   - an auth route with a valid session redirects to the saved target
//     (the "redirect" query param) or the admin default;
//   - everything else is allowed.
//
// savedTarget is only honoured when it is a local path, so a crafted
// redirect param cannot bounce the caller off-site.
func (g *Gate) Decide(path, savedTarget string, authenticated bool) GateDecision {
	if g.IsProtected(path) && !authenticated {
		return GateDecision{
			Action:   GateRedirect,
			Location: g.loginPath + "?redirect=" + url.QueryEscape(path),
		}
	}

	if authenticated {
		for _, route := range g.authRoutes {
			if path == route {
				target := g.defaultTarget
				if len(savedTarget) > 1 && savedTarget[0] == '/' && savedTarget[1] != '/' {
					target = savedTarget
				}
				return GateDecision{Action: GateRedirect, Location: target}
			}
		}
	}

	return GateDecision{Action: GateAllow}
}
