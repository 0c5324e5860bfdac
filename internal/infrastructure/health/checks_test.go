package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/avatarctic/inventory-service/configs"
	healthdomain "github.com/avatarctic/inventory-service/internal/core/domain/health"
	"github.com/avatarctic/inventory-service/internal/infrastructure/health"
	tmocks "github.com/avatarctic/inventory-service/test/mocks"
)

func TestInventoryReadinessCheck_UpWhenCheckerSucceeds(t *testing.T) {
	check := health.NewInventoryReadinessCheck(&tmocks.HealthCheckerMock{}, logrus.New())
	resp := check.Call(context.Background())
	assert.Equal(t, healthdomain.Up(health.ReadinessCheckName), resp)
	assert.Equal(t, healthdomain.KindReadiness, check.Kind())
}

func TestInventoryReadinessCheck_DownWhenCheckerFails(t *testing.T) {
	checker := &tmocks.HealthCheckerMock{CheckFn: func(ctx context.Context) error { return errors.New("dial tcp: connection refused") }}
	resp := health.NewInventoryReadinessCheck(checker, logrus.New()).Call(context.Background())
	assert.Equal(t, healthdomain.Down(health.ReadinessCheckName), resp)
}

func TestInventoryReadinessCheck_DownWhenCheckerPanics(t *testing.T) {
	checker := &tmocks.HealthCheckerMock{CheckFn: func(ctx context.Context) error { panic("boom") }}
	var resp healthdomain.Response
	require.NotPanics(t, func() {
		resp = health.NewInventoryReadinessCheck(checker, logrus.New()).Call(context.Background())
	})
	assert.Equal(t, healthdomain.Down(health.ReadinessCheckName), resp)
}

func TestInventoryReadinessCheck_DownWithoutChecker(t *testing.T) {
	resp := health.NewInventoryReadinessCheck(nil, nil).Call(context.Background())
	assert.Equal(t, healthdomain.StatusDown, resp.Status)
}

func TestInventoryLivenessCheck_Name(t *testing.T) {
	check := health.NewInventoryLivenessCheck(&tmocks.HealthCheckerMock{}, nil)
	assert.Equal(t, healthdomain.KindLiveness, check.Kind())
	assert.Equal(t, health.LivenessCheckName, check.Call(context.Background()).Name)

	failing := health.NewInventoryLivenessCheck(&tmocks.HealthCheckerMock{CheckFn: func(ctx context.Context) error { return errors.New("oom") }}, nil)
	assert.Equal(t, healthdomain.Down(health.LivenessCheckName), failing.Call(context.Background()))
}

func TestInventoryReadinessCheck_AgainstSystemService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	up := health.NewInventoryReadinessCheck(
		health.NewSystemServiceChecker(&config.SystemConfig{Hostname: u.Hostname(), Port: u.Port()}),
		logrus.New(),
	)
	down := health.NewInventoryReadinessCheck(
		health.NewSystemServiceChecker(&config.SystemConfig{Hostname: "nonexistent.invalid", Port: "9080"}),
		logrus.New(),
	)

	var wg sync.WaitGroup
	results := make([]healthdomain.Response, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = up.Call(context.Background())
			} else {
				results[i] = down.Call(context.Background())
			}
		}(i)
	}
	wg.Wait()

	for i, resp := range results {
		assert.Equal(t, health.ReadinessCheckName, resp.Name)
		if i%2 == 0 {
			assert.Equal(t, healthdomain.StatusUp, resp.Status, "call %d", i)
		} else {
			assert.Equal(t, healthdomain.StatusDown, resp.Status, "call %d", i)
		}
	}
}

func TestInventoryReadinessCheck_ReturnsDownWhenContextEnds(t *testing.T) {
	checker := &tmocks.HealthCheckerMock{CheckFn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	resp := health.NewInventoryReadinessCheck(checker, logrus.New()).Call(ctx)
	assert.Equal(t, healthdomain.Down(health.ReadinessCheckName), resp)
	assert.Less(t, time.Since(start), 2*time.Second)
}
