package ports

import (
	"context"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

// CatalogClient reads from the external product catalog API. The catalog is
// treated as an opaque collaborator: its data is passed through, never
// validated or stored.
type CatalogClient interface {
	Products(ctx context.Context) (*domain.ProductPage, error)
	// Product returns domain.ErrProductNotFound when the catalog has no
	// product with the given id.
	Product(ctx context.Context, id string) (*domain.Product, error)
	// Search returns an empty page without contacting the catalog when the
	// query is blank.
	Search(ctx context.Context, query string) (*domain.ProductPage, error)
}
