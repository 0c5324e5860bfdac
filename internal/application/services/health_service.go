package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/inventory-service/internal/core/domain/health"
	"github.com/avatarctic/inventory-service/internal/core/ports"
)

// HealthService runs registered checks in registration order. It holds no
// mutable state after construction, so overlapping polls are safe.
type HealthService struct {
	checks []ports.HealthCheck
	logger *logrus.Logger
}

func NewHealthService(logger *logrus.Logger, checks ...ports.HealthCheck) ports.HealthService {
	registered := make([]ports.HealthCheck, 0, len(checks))
	for _, c := range checks {
		if c != nil {
			registered = append(registered, c)
		}
	}
	return &HealthService{
		checks: registered,
		logger: logger,
	}
}

func (s *HealthService) Readiness(ctx context.Context) health.Report {
	return s.run(ctx, func(k health.Kind) bool { return k == health.KindReadiness })
}

func (s *HealthService) Liveness(ctx context.Context) health.Report {
	return s.run(ctx, func(k health.Kind) bool { return k == health.KindLiveness })
}

func (s *HealthService) Health(ctx context.Context) health.Report {
	return s.run(ctx, func(health.Kind) bool { return true })
}

func (s *HealthService) run(ctx context.Context, include func(health.Kind) bool) health.Report {
	responses := make([]health.Response, 0, len(s.checks))
	for _, c := range s.checks {
		if !include(c.Kind()) {
			continue
		}
		resp := c.Call(ctx)
		s.logResponse(c.Kind(), resp)
		responses = append(responses, resp)
	}
	return health.Aggregate(responses...)
}

func (s *HealthService) logResponse(kind health.Kind, resp health.Response) {
	if s.logger == nil {
		return
	}
	entry := s.logger.WithFields(logrus.Fields{"check": resp.Name, "kind": kind, "status": resp.Status})
	if resp.IsUp() {
		entry.Debug("health check completed")
		return
	}
	entry.Warn("health check reported down")
}
