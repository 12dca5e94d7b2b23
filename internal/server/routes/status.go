package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freedaiy/intake/internal/app/domain"
)

const rootMessage = "FreeDAIY API is running"

// StatusReporter produces the diagnostics report.
type StatusReporter interface {
	Status(ctx context.Context) domain.StatusReport
}

// StatusRoutes registers liveness and diagnostics endpoints.
type StatusRoutes struct {
	diagnostics StatusReporter
}

// NewStatusRoutes constructs status routes.
func NewStatusRoutes(diagnostics StatusReporter) *StatusRoutes {
	return &StatusRoutes{diagnostics: diagnostics}
}

// RegisterRoutes registers status endpoints.
func (r *StatusRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/", handleRoot)
	s.GET("/test", r.handleTest)
}

func handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": rootMessage})
}

// handleTest always answers 200; store problems are part of the report.
func (r *StatusRoutes) handleTest(c echo.Context) error {
	return c.JSON(http.StatusOK, r.diagnostics.Status(c.Request().Context()))
}
