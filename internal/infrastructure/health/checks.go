package health

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	healthdomain "github.com/avatarctic/inventory-service/internal/core/domain/health"
	"github.com/avatarctic/inventory-service/internal/core/ports"
)

const (
	ReadinessCheckName = "InventoryResource Readiness Check"
	LivenessCheckName  = "InventoryResource Liveness Check"
)

// dependencyCheck adapts a HealthChecker to a named HealthCheck. Checker
// errors and panics both become DOWN.
type dependencyCheck struct {
	name    string
	kind    healthdomain.Kind
	checker ports.HealthChecker
	logger  *logrus.Logger
}

// NewInventoryReadinessCheck reports whether the system service is reachable.
func NewInventoryReadinessCheck(checker ports.HealthChecker, logger *logrus.Logger) ports.HealthCheck {
	return &dependencyCheck{
		name:    ReadinessCheckName,
		kind:    healthdomain.KindReadiness,
		checker: checker,
		logger:  logger,
	}
}

// NewInventoryLivenessCheck reports whether the process still has memory headroom.
func NewInventoryLivenessCheck(checker ports.HealthChecker, logger *logrus.Logger) ports.HealthCheck {
	return &dependencyCheck{
		name:    LivenessCheckName,
		kind:    healthdomain.KindLiveness,
		checker: checker,
		logger:  logger,
	}
}

func (c *dependencyCheck) Kind() healthdomain.Kind { return c.kind }

func (c *dependencyCheck) Call(ctx context.Context) (resp healthdomain.Response) {
	defer func() {
		if r := recover(); r != nil {
			c.logFailure(fmt.Errorf("panic: %v", r))
			resp = healthdomain.Down(c.name)
		}
	}()

	if c.checker == nil {
		return healthdomain.Down(c.name)
	}

	err := c.checker.Check(ctx)
	if err != nil {
		c.logFailure(err)
	}
	return healthdomain.FromError(c.name, err)
}

func (c *dependencyCheck) logFailure(err error) {
	if c.logger == nil {
		return
	}
	fields := logrus.Fields{"check": c.name, "kind": c.kind}
	if c.checker != nil {
		fields["dependency"] = c.checker.Name()
	}
	c.logger.WithFields(fields).WithError(err).Debug("dependency check failed")
}
