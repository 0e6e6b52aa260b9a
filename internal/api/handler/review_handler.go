package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ourstore/storefront-api/internal/api/metrics"
	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
)

// ReviewHandler handles review submission and listing.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Submit handles POST /api/reviews.
//
// @Summary      Submit a product review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      submitReviewRequest  true  "Review"
// @Success      201   {object}  submitReviewResponse
// @Failure      400   {object}  reviewErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, reviewErrorResponse{
			Success: false,
			Error:   "Invalid JSON in request body",
		})
	}

	review, err := h.service.Submit(c.Request().Context(), ports.ReviewCandidate{
		Rating:    req.Rating,
		ProductID: req.ProductID,
		UserName:  req.UserName,
		Comment:   req.Comment,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ReviewsSubmittedTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, reviewErrorResponse{
				Success: false,
				Error:   "Validation failed",
				Details: ve.Details,
			})
		}
		return err
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusCreated, submitReviewResponse{
		Success: true,
		Message: "Review submitted successfully",
		Review:  review,
	})
}

// List handles GET /api/reviews?productId=<id>.
//
// @Summary      List reviews, newest first
// @Tags         reviews
// @Produce      json
// @Param        productId  query     string  false  "Filter by product"
// @Success      200        {object}  listReviewsResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context(), c.QueryParam("productId"))
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	return c.JSON(http.StatusOK, listReviewsResponse{
		Success: true,
		Reviews: reviews,
		Total:   len(reviews),
	})
}
