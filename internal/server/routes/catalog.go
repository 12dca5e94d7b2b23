package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedaiy/intake/internal/app/domain"
)

// Catalog provides the fixed content listings.
type Catalog interface {
	ListPosts() []domain.Post
	ListProducts() []domain.Product
	ListResources() []domain.Resource
}

// CatalogRoutes registers content endpoints.
type CatalogRoutes struct {
	catalog Catalog
}

// NewCatalogRoutes constructs catalog routes.
func NewCatalogRoutes(catalog Catalog) *CatalogRoutes {
	return &CatalogRoutes{catalog: catalog}
}

// RegisterRoutes registers content endpoints.
func (r *CatalogRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/posts", func(c echo.Context) error {
		return c.JSON(http.StatusOK, r.catalog.ListPosts())
	})
	s.GET("/products", func(c echo.Context) error {
		return c.JSON(http.StatusOK, r.catalog.ListProducts())
	})
	s.GET("/resources", func(c echo.Context) error {
		return c.JSON(http.StatusOK, r.catalog.ListResources())
	})
}
