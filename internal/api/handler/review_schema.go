package handler

import "github.com/ourstore/storefront-api/internal/core/domain"

// Field names follow the original client contract (camelCase).

type submitReviewRequest struct {
	Rating    int    `json:"rating"`
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	Comment   string `json:"comment"`
}

type submitReviewResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Review  *domain.Review `json:"review"`
}

type reviewErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type listReviewsResponse struct {
	Success bool            `json:"success"`
	Reviews []domain.Review `json:"reviews"`
	Total   int             `json:"total"`
}
