package ports

import (
	"context"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews. The store is
// append-only: Insert is the only mutator and reviews are never rewritten.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	// List returns reviews sorted by CreatedAt descending. When productID is
	// non-empty, only reviews for that product are returned.
	List(ctx context.Context, productID string) ([]domain.Review, error)
}
