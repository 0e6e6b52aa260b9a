package domain

import (
	"strings"
	"time"
)

// Review is a user-submitted product review. Reviews are immutable once
// stored: there is no update or delete, and IDs are never reused.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidationError carries every violated submission rule at once. Rules are
// checked in full rather than stopping at the first failure, so the caller
// can surface the complete list to the user.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}
