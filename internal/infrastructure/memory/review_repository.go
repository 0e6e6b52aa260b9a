// Package memory holds the volatile in-process stores. Everything here is
// reset to empty on restart; that is the contract, not an accident.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

// ReviewRepository is the append-only, process-lifetime review store.
// Handlers run on concurrent goroutines, so every access goes through the
// mutex. The store is unbounded for the life of the process; a size cap was
// deliberately not invented.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Insert appends a review. It is the only mutator.
func (r *ReviewRepository) Insert(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = append(r.reviews, *review)
	return nil
}

// List returns a fresh slice sorted by CreatedAt descending, filtered to
// productID when non-empty. Callers never see the internal slice, so a
// snapshot stays stable while later inserts land.
func (r *ReviewRepository) List(_ context.Context, productID string) ([]domain.Review, error) {
	r.mu.RLock()
	out := make([]domain.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if productID == "" || review.ProductID == productID {
			out = append(out, review)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
