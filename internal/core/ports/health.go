package ports

import (
	"context"

	"github.com/avatarctic/inventory-service/internal/core/domain/health"
)

// HealthChecker abstracts a dependency health probe.
// Implementations should return error if unhealthy and must return once ctx
// is done.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthCheck is a named check registered with the health service.
// Call must not panic. It returns once ctx is done only as far as the
// HealthChecker it wraps honours ctx.
type HealthCheck interface {
	Kind() health.Kind
	Call(ctx context.Context) health.Response
}

// HealthService aggregates registered checks per kind.
type HealthService interface {
	Readiness(ctx context.Context) health.Report
	Liveness(ctx context.Context) health.Report
	Health(ctx context.Context) health.Report
}
