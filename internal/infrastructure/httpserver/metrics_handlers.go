package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avatarctic/inventory-service/internal/core/domain/health"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "The HTTP request latencies in seconds",
		},
		[]string{"method", "endpoint"},
	)

	healthCheckUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "health_check_up",
			Help: "Last observed status of a health check (1 = UP, 0 = DOWN)",
		},
		[]string{"scope", "check"},
	)

	healthStatusUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "health_status_up",
			Help: "Last observed aggregate health status per scope (1 = UP, 0 = DOWN)",
		},
		[]string{"scope"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(healthCheckUp)
	prometheus.MustRegister(healthStatusUp)
}

// GetRequestsTotal returns the requests total metric for middleware use
func GetRequestsTotal() *prometheus.CounterVec {
	return requestsTotal
}

// GetRequestDuration returns the request duration metric for middleware use
func GetRequestDuration() *prometheus.HistogramVec {
	return requestDuration
}

func recordHealthReport(scope string, report health.Report) {
	healthStatusUp.WithLabelValues(scope).Set(statusValue(report.Status))
	for _, check := range report.Checks {
		healthCheckUp.WithLabelValues(scope, check.Name).Set(statusValue(check.Status))
	}
}

func statusValue(s health.Status) float64 {
	if s == health.StatusUp {
		return 1
	}
	return 0
}

// LogMetricsInitialization logs that metrics have been initialized
func (s *Server) LogMetricsInitialization() {
	if s.logger != nil {
		s.logger.Info("Prometheus metrics initialized and registered")
		s.logger.WithFields(map[string]interface{}{
			"http_requests_total":   "Counter for HTTP requests by method, endpoint, status",
			"http_request_duration": "Histogram for HTTP request duration by method, endpoint",
			"health_check_up":       "Gauge for the last status of each health check by scope",
			"health_status_up":      "Gauge for the last aggregate health status by scope",
			"metrics_endpoint":      "/metrics",
		}).Debug("Available Prometheus metrics")
	}
}

// Metrics handler
func (s *Server) metricsHandler() http.Handler {
	return promhttp.Handler()
}

// metricsEndpoint wraps the metrics handler with logging
func (s *Server) metricsEndpoint(c echo.Context) error {
	if s.logger != nil {
		s.logger.Debug("Serving Prometheus metrics")
	}
	handler := s.metricsHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
