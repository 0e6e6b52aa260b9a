package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ourstore/storefront-api/internal/api/metrics"
	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
)

// ProductHandler exposes the external catalog as read-only JSON endpoints.
// The catalog's data passes through untouched; errors map to 404/502 in the
// global error handler.
type ProductHandler struct {
	catalog ports.CatalogClient
}

func NewProductHandler(catalog ports.CatalogClient) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /api/products.
//
// @Summary      List catalog products
// @Tags         products
// @Produce      json
// @Success      200  {object}  domain.ProductPage
// @Failure      502  {object}  map[string]any
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.catalog.Products(c.Request().Context())
	if err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues("products").Inc()
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a single product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]any
// @Failure      502  {object}  map[string]any
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			metrics.CatalogErrorsTotal.WithLabelValues("product").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Search handles GET /api/products/search?q=<query>. Results are always
// fetched fresh from the upstream; a blank query returns an empty page.
//
// @Summary      Search catalog products
// @Tags         products
// @Produce      json
// @Param        q    query     string  false  "Search query"
// @Success      200  {object}  domain.ProductPage
// @Failure      502  {object}  map[string]any
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	page, err := h.catalog.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues("search").Inc()
		return err
	}
	return c.JSON(http.StatusOK, page)
}
