package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofood/dashboard/api"
	"github.com/gofood/dashboard/catalog"
	"github.com/gofood/dashboard/config"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the foods REST backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.NewLogger(cfg.LogLevel)
		slog.SetDefault(logger)

		store, closeStore, err := newStore(cmd.Context(), logger)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := &http.Server{
			Handler:      api.Router(store, logger),
			Addr:         cfg.ListenAddr,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "address", cfg.ListenAddr, "store", cfg.Store)
			errCh <- srv.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigCh:
			logger.Info("shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		case err = <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	},
}

func newStore(ctx context.Context, logger *slog.Logger) (api.Store, func(), error) {
	switch cfg.Store {
	case config.StoreTemporal:
		c, err := client.Dial(client.Options{
			HostPort:  cfg.Temporal.Address,
			Namespace: cfg.Temporal.Namespace,
			Logger:    tlog.NewStructuredLogger(logger),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("client error: %w", err)
		}

		store := catalog.NewTemporal(c, cfg.Temporal.TaskQueue)
		if err := store.Start(ctx); err != nil {
			c.Close()
			return nil, nil, err
		}

		return store, c.Close, nil
	default:
		if cfg.SeedFile == "" {
			return catalog.NewMemory(), func() {}, nil
		}

		store, err := catalog.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("loaded seed file", "path", cfg.SeedFile)

		return store, func() {}, nil
	}
}

func init() {
	apiCmd.Flags().StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "Listen address")
	apiCmd.Flags().StringVar(&cfg.Store, "store", cfg.Store, "Storage backend: memory or temporal")
	apiCmd.Flags().StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "JSON file with plates to start the memory store with")
	apiCmd.Flags().StringVar(&cfg.Temporal.Address, "temporal-address", cfg.Temporal.Address, "Temporal frontend address, with --store temporal")

	rootCmd.AddCommand(apiCmd)
}
