package ports

import (
	"context"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

// ReviewCandidate is the DTO passed from the transport layer to ReviewService.
type ReviewCandidate struct {
	Rating    int
	ProductID string
	UserName  string
	Comment   string
}

// ReviewService validates and stores product reviews.
type ReviewService interface {
	// Submit validates the candidate in full and, when every rule passes,
	// stores and returns the review with its ID and creation time assigned.
	// On failure it returns *domain.ValidationError listing every violated
	// rule; nothing is stored.
	Submit(ctx context.Context, candidate ReviewCandidate) (*domain.Review, error)

	// List returns reviews newest first, optionally filtered by product.
	// An unknown product yields an empty slice, not an error.
	List(ctx context.Context, productID string) ([]domain.Review, error)
}
