// Package catalog implements the client for the external product catalog
// API (a dummyjson-compatible read-only service).
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ourstore/storefront-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://dummyjson.com"
	defaultTimeout = 10 * time.Second
)

// Config captures the settings for the upstream catalog connection.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks HTTP to the catalog. Failures are never retried: an upstream
// error surfaces immediately as domain.ErrCatalogUnavailable.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Products fetches the full catalog listing.
func (c *Client) Products(ctx context.Context) (*domain.ProductPage, error) {
	var page domain.ProductPage
	if err := c.get(ctx, "/products", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Search runs a keyword query. A blank query short-circuits to an empty page
// without touching the upstream.
func (c *Client) Search(ctx context.Context, query string) (*domain.ProductPage, error) {
	if strings.TrimSpace(query) == "" {
		return &domain.ProductPage{Products: []domain.Product{}}, nil
	}

	var page domain.ProductPage
	if err := c.get(ctx, "/products/search?q="+url.QueryEscape(query), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: upstream status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrCatalogUnavailable, err)
	}
	return nil
}
