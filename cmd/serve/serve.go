// Package serve implements the serve subcommand: open the dictionary
// store, load the build version and run the HTTP API until interrupted.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcpdict/mcpdict-go/internal/api"
	"github.com/mcpdict/mcpdict-go/internal/conf"
	"github.com/mcpdict/mcpdict-go/internal/datastore"
	"github.com/mcpdict/mcpdict-go/internal/errors"
	"github.com/mcpdict/mcpdict-go/internal/logging"
	"github.com/mcpdict/mcpdict-go/internal/observability"
)

// shutdownTimeout bounds the drain of in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

// Command returns the serve subcommand.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the lookup API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context())
		},
	}
}

// Run starts the service and blocks until the context is cancelled or a
// termination signal arrives. The build version must load before the
// listener opens; a store without a version stamp fails startup.
func Run(ctx context.Context) error {
	settings, err := conf.Load()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	logPath := ""
	if settings.Log.Enabled {
		logPath = settings.Log.Path
	}
	logging.Init(settings.Debug, logPath)
	logger := logging.ForService("serve")

	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("error creating metrics: %w", err)
	}

	store := datastore.NewSQLiteStore(settings)
	if err := store.Open(); err != nil {
		return fmt.Errorf("error opening dictionary store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("error closing dictionary store", "error", err.Error())
		}
	}()

	version, err := store.BuildVersion(ctx)
	if err != nil {
		return fmt.Errorf("error loading build version during startup: %w", err)
	}
	logger.Info("dictionary store ready", "build_version", version)

	controller := api.New(settings, store, version, metrics)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- controller.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-sigCtx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := controller.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during shutdown: %w", err)
		}
		return nil
	}
}
