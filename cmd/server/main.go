package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "github.com/avatarctic/inventory-service/configs"
	"github.com/avatarctic/inventory-service/internal/application/services"
	"github.com/avatarctic/inventory-service/internal/core/ports"
	"github.com/avatarctic/inventory-service/internal/infrastructure/health"
	"github.com/avatarctic/inventory-service/internal/infrastructure/httpserver"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errProbeDown) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory service health endpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	cmd.PersistentFlags().String("log-level", "", "Override LOG_LEVEL. Available: debug, info, warn, error")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newProbeCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server exposing /health, /health/ready, /health/live and /metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

func newLogger(cfg *config.LogConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}
	return logger
}

// buildHealthService registers every check the service exposes, readiness first.
func buildHealthService(cfg *config.Config, logger *logrus.Logger) ports.HealthService {
	readiness := health.NewInventoryReadinessCheck(health.NewSystemServiceChecker(&cfg.System), logger)
	liveness := health.NewInventoryLivenessCheck(health.NewMemoryChecker(&cfg.Liveness), logger)
	return services.NewHealthService(logger, readiness, liveness)
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(&cfg.Log, os.Stdout)
	logger.WithFields(logrus.Fields{
		"system_hostname": cfg.System.Hostname,
		"system_port":     cfg.System.Port,
	}).Info("Starting inventory service...")

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	deps := httpserver.ServerDeps{
		HealthService: buildHealthService(cfg, logger),
	}
	server := httpserver.NewServer(serverConfig, logger, deps)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exited")
	return nil
}
