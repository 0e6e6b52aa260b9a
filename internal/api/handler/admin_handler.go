package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ourstore/storefront-api/internal/api/middleware"
	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
)

// AdminHandler serves the protected dashboard data. The session gate
// guarantees a valid session before these routes are reached.
type AdminHandler struct {
	reviews ports.ReviewService
}

func NewAdminHandler(reviews ports.ReviewService) *AdminHandler {
	return &AdminHandler{reviews: reviews}
}

type dashboardStats struct {
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

type dashboardResponse struct {
	Success bool           `json:"success"`
	User    *domain.User   `json:"user"`
	Stats   dashboardStats `json:"stats"`
}

// Dashboard handles GET /api/admin/dashboard.
//
// @Summary      Admin dashboard data
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	sess := middleware.Session(c)
	if sess == nil {
		// The gate redirects unauthenticated callers before routing; this
		// path is only reachable if the middleware was not mounted.
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	all, err := h.reviews.List(c.Request().Context(), "")
	if err != nil {
		return err
	}

	stats := dashboardStats{TotalReviews: len(all)}
	if len(all) > 0 {
		sum := 0
		for _, r := range all {
			sum += r.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(all))
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Success: true,
		User: &domain.User{
			ID:       sess.UserID,
			Username: sess.Username,
			Role:     sess.Role,
		},
		Stats: stats,
	})
}
