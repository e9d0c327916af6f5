// ABOUTME: CLI command for serving the HTTP API.
// ABOUTME: Renders summaries and exposes the run log over HTTP with graceful shutdown.
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

	"github.com/harperreed/fitcoach/internal/api"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long: `Serve health summaries and the run log over HTTP.

ENDPOINTS:

  GET  /healthz            liveness check
  GET  /v1/sample          sample summary (?format=json for the snapshot)
  POST /v1/summary         render raw values (?format=text for plain text)
  GET  /v1/runs            recent runs (?limit=N)
  GET  /v1/runs/{id}       one run by ID or prefix

The listen address defaults to :$PORT, or :8080 when PORT is unset.
Allowed CORS origins come from "cors_origins" in the config file.

EXAMPLES:

  coach serve
  coach serve --addr 127.0.0.1:9000
  curl -X POST localhost:8080/v1/summary -d @health.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = defaultServeAddr()
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewServer(repo, cfg.GetCORSOrigins()).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("api listening", "addr", addr, "backend", cfg.GetBackend())
			errCh <- srv.ListenAndServe()
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s (Ctrl+C to stop)\n", addr)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		logger.Info("api stopped")
		return nil
	},
}

func defaultServeAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :$PORT or :8080)")
	rootCmd.AddCommand(serveCmd)
}
