package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofood/dashboard/config"
	"github.com/gofood/dashboard/workflows"
	"github.com/spf13/cobra"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
	"go.temporal.io/sdk/client"
	sdktally "go.temporal.io/sdk/contrib/tally"
	tlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the food catalog worker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.NewLogger(cfg.LogLevel)
		slog.SetDefault(logger)

		scope, err := newPrometheusScope(prometheus.Configuration{
			ListenAddress: cfg.Temporal.MetricsAddr,
			TimerType:     "histogram",
		}, logger)
		if err != nil {
			return err
		}

		c, err := client.Dial(client.Options{
			HostPort:       cfg.Temporal.Address,
			Namespace:      cfg.Temporal.Namespace,
			Logger:         tlog.NewStructuredLogger(logger),
			MetricsHandler: sdktally.NewMetricsHandler(scope),
		})
		if err != nil {
			return fmt.Errorf("client error: %w", err)
		}
		defer c.Close()

		w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})

		w.RegisterWorkflow(workflows.FoodCatalog)

		logger.Info("worker starting", "task_queue", cfg.Temporal.TaskQueue, "metrics", cfg.Temporal.MetricsAddr)

		err = w.Run(worker.InterruptCh())
		if err != nil {
			return fmt.Errorf("worker exited: %w", err)
		}

		return nil
	},
}

func newPrometheusScope(c prometheus.Configuration, logger *slog.Logger) (tally.Scope, error) {
	reporter, err := c.NewReporter(
		prometheus.ConfigurationOptions{
			Registry: prom.NewRegistry(),
			OnError: func(err error) {
				logger.Error("error in prometheus reporter", "error", err)
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error creating prometheus reporter: %w", err)
	}

	scopeOpts := tally.ScopeOptions{
		CachedReporter:  reporter,
		Separator:       prometheus.DefaultSeparator,
		SanitizeOptions: &sdktally.PrometheusSanitizeOptions,
	}
	scope, _ := tally.NewRootScope(scopeOpts, time.Second)
	scope = sdktally.NewPrometheusNamingScope(scope)

	return scope, nil
}

func init() {
	workerCmd.Flags().StringVar(&cfg.Temporal.Address, "temporal-address", cfg.Temporal.Address, "Temporal frontend address")
	workerCmd.Flags().StringVar(&cfg.Temporal.TaskQueue, "task-queue", cfg.Temporal.TaskQueue, "Task queue to poll")
	workerCmd.Flags().StringVar(&cfg.Temporal.MetricsAddr, "metrics-listen", cfg.Temporal.MetricsAddr, "Prometheus metrics listen address")

	rootCmd.AddCommand(workerCmd)
}
