package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mackerelio/go-osstat/memory"

	config "github.com/avatarctic/inventory-service/configs"
	"github.com/avatarctic/inventory-service/internal/core/ports"
)

const (
	systemPropertiesPath = "/system/properties"
	// Upper bound for a probe against a peer that accepts and then stalls.
	systemProbeTimeout = 5 * time.Second

	defaultMemoryThreshold = 0.9
)

// systemServiceChecker posts to the system service and treats any completed
// exchange as reachable.
type systemServiceChecker struct {
	hostname string
	port     string
	client   *http.Client
}

// NewSystemServiceChecker creates a health checker for the system service.
func NewSystemServiceChecker(cfg *config.SystemConfig) ports.HealthChecker {
	return &systemServiceChecker{
		hostname: cfg.Hostname,
		port:     cfg.Port,
		client: &http.Client{
			Timeout: systemProbeTimeout,
			// Direct dial only: a proxy would answer on behalf of a dead peer.
			Transport: &http.Transport{DisableKeepAlives: true},
			// A 3xx answer is the peer responding; never follow it.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (s *systemServiceChecker) Name() string { return "system" }

// endpoint is rebuilt on every call; the hostname is not validated.
func (s *systemServiceChecker) endpoint() string {
	return "http://" + net.JoinHostPort(s.hostname, s.port) + systemPropertiesPath
}

func (s *systemServiceChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build system service request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("system service unreachable: %w", err)
	}
	// Headers arrived, so the peer answered. Status code and body are
	// irrelevant; the body is closed unread.
	_ = resp.Body.Close()
	return nil
}

// memoryChecker fails once host memory usage reaches the threshold.
type memoryChecker struct {
	threshold float64
	read      func() (*memory.Stats, error)
}

// NewMemoryChecker creates a health checker for host memory pressure.
func NewMemoryChecker(cfg *config.LivenessConfig) ports.HealthChecker {
	threshold := cfg.MemoryThreshold
	if threshold <= 0 {
		threshold = defaultMemoryThreshold
	}
	return &memoryChecker{threshold: threshold, read: memory.Get}
}

func (m *memoryChecker) Name() string { return "memory" }

func (m *memoryChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stats, err := m.read()
	if err != nil {
		return fmt.Errorf("failed to read memory stats: %w", err)
	}
	if stats.Total == 0 {
		return errors.New("total memory reported as zero")
	}

	usage := float64(stats.Used) / float64(stats.Total)
	if usage >= m.threshold {
		return fmt.Errorf("memory usage %.2f reached threshold %.2f", usage, m.threshold)
	}
	return nil
}
