package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/mdc/internal/config"
	"github.com/vango-dev/mdc/internal/gallery"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the component gallery server",
		Long: `Serve the component gallery.

The page binds every component to the browser's Material Components
runtime over a websocket. Prometheus metrics are served on the
configured metrics path.

Examples:
  mdc serve
  mdc serve --port=8080
  mdc serve --config=deploy/mdc.yaml --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// Command-line overrides
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: mdc.yaml or mdc.json in the working directory)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := cfg.Logger(os.Stderr)

	app := gallery.NewServer(cfg, logger)
	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  ➜ Gallery: http://%s\n", cfg.Address())
	if cfg.Metrics.Enabled {
		fmt.Fprintf(cmd.OutOrStdout(), "  ➜ Metrics: http://%s%s\n", cfg.Address(), cfg.Metrics.Path)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// Websocket sessions are hijacked and outlive Shutdown.
		err := srv.Shutdown(shutdownCtx)
		app.Close()
		return err
	})
	return g.Wait()
}
