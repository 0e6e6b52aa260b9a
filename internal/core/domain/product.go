package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Product mirrors the upstream catalog's JSON shape. The catalog is a
// read-only external collaborator; this service never writes to it.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// ProductPage is a page of catalog results as returned by the upstream API.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
