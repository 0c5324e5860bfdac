package mocks

import (
	"context"

	"github.com/avatarctic/inventory-service/internal/core/domain/health"
)

// HealthCheckerMock is a lightweight mock for ports.HealthChecker
type HealthCheckerMock struct {
	NameValue string
	CheckFn   func(ctx context.Context) error
}

func (m *HealthCheckerMock) Name() string {
	if m.NameValue != "" {
		return m.NameValue
	}
	return "mock"
}
func (m *HealthCheckerMock) Check(ctx context.Context) error {
	if m.CheckFn != nil {
		return m.CheckFn(ctx)
	}
	return nil
}

// HealthCheckMock is a lightweight mock for ports.HealthCheck
type HealthCheckMock struct {
	KindValue health.Kind
	CallFn    func(ctx context.Context) health.Response
}

func (m *HealthCheckMock) Kind() health.Kind {
	if m.KindValue != "" {
		return m.KindValue
	}
	return health.KindReadiness
}
func (m *HealthCheckMock) Call(ctx context.Context) health.Response {
	if m.CallFn != nil {
		return m.CallFn(ctx)
	}
	return health.Up("mock")
}

// HealthServiceMock is a lightweight mock for ports.HealthService
type HealthServiceMock struct {
	ReadinessFn func(ctx context.Context) health.Report
	LivenessFn  func(ctx context.Context) health.Report
	HealthFn    func(ctx context.Context) health.Report
}

func (m *HealthServiceMock) Readiness(ctx context.Context) health.Report {
	if m.ReadinessFn != nil {
		return m.ReadinessFn(ctx)
	}
	return health.Aggregate()
}
func (m *HealthServiceMock) Liveness(ctx context.Context) health.Report {
	if m.LivenessFn != nil {
		return m.LivenessFn(ctx)
	}
	return health.Aggregate()
}
func (m *HealthServiceMock) Health(ctx context.Context) health.Report {
	if m.HealthFn != nil {
		return m.HealthFn(ctx)
	}
	return health.Aggregate()
}
