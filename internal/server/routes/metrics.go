package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MetricsRoutes exposes Prometheus metrics.
type MetricsRoutes struct {
	handler http.Handler
}

// NewMetricsRoutes constructs metrics routes.
func NewMetricsRoutes(handler http.Handler) *MetricsRoutes {
	return &MetricsRoutes{handler: handler}
}

// RegisterRoutes registers GET /metrics.
func (r *MetricsRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/metrics", echo.WrapHandler(r.handler))
}
