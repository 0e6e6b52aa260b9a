package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ourstore/storefront-api/internal/api/metrics"
	"github.com/ourstore/storefront-api/internal/api/middleware"
	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
)

// sessionMaxAge is the absolute cookie lifetime: 24 hours, matching the
// token expiry.
const sessionMaxAge = 86400

type AuthHandler struct {
	authService ports.AuthService
	// secureCookies sets the cookie Secure flag; tied to the deployment
	// environment (production only).
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Success  bool         `json:"success"`
	User     *domain.User `json:"user,omitempty"`
	Error    string       `json:"error,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

// Login authenticates against the static admin credential and sets the
// session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  authResponse
// @Failure      500   {object}  authResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("malformed").Inc()
		return c.JSON(http.StatusInternalServerError, authResponse{Success: false, Error: "Login failed"})
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		// Wrong username and wrong password produce the same message.
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, authResponse{Success: false, Error: "Invalid credentials"})
	}

	c.SetCookie(h.sessionCookie(token, sessionMaxAge))
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true, User: user})
}

// Logout clears the session cookie unconditionally and tells the caller
// where to go next.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, authResponse{Success: true, Redirect: "/login"})
}

// Me returns the identity behind the current session cookie.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  authResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.Session(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, authResponse{Success: false, Error: "Not authenticated"})
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User: &domain.User{
			ID:       sess.UserID,
			Username: sess.Username,
			Role:     sess.Role,
		},
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
