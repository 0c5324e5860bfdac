package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	healthdomain "github.com/avatarctic/inventory-service/internal/core/domain/health"
)

// errProbeDown is returned after the report has been printed, so main exits
// non-zero without printing anything else.
var errProbeDown = errors.New("health probe reported DOWN")

const probeTimeout = 10 * time.Second

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "probe [ready|live|all]",
		Short:     "Run health checks once and exit non-zero when any is DOWN",
		Long:      "Runs the selected checks in-process, prints the report as JSON and exits 1 when the aggregate status is DOWN. Suitable for container HEALTHCHECK instructions.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"ready", "live", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := "ready"
			if len(args) == 1 {
				scope = args[0]
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(&cfg.Log, cmd.ErrOrStderr())
			svc := buildHealthService(cfg, logger)

			ctx, cancel := context.WithTimeout(cmd.Context(), probeTimeout)
			defer cancel()

			var report healthdomain.Report
			switch scope {
			case "live":
				report = svc.Liveness(ctx)
			case "all":
				report = svc.Health(ctx)
			default:
				report = svc.Readiness(ctx)
			}

			out, err := json.Marshal(report)
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if report.Status != healthdomain.StatusUp {
				return errProbeDown
			}
			return nil
		},
	}
}
