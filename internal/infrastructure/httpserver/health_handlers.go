package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/inventory-service/internal/core/domain/health"
)

// Deadline for one health poll, covering every check it runs.
const healthCheckTimeout = 5 * time.Second

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return s.respondHealth(c, "all", s.healthSvc.Health)
}

func (s *Server) readinessCheck(c echo.Context) error {
	return s.respondHealth(c, string(health.KindReadiness), s.healthSvc.Readiness)
}

func (s *Server) livenessCheck(c echo.Context) error {
	return s.respondHealth(c, string(health.KindLiveness), s.healthSvc.Liveness)
}

func (s *Server) respondHealth(c echo.Context, scope string, run func(context.Context) health.Report) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	report := run(ctx)
	recordHealthReport(scope, report)

	code := http.StatusOK
	if report.Status != health.StatusUp {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, report)
}
