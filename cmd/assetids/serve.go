package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/assetids/internal/application/handlers"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stored tables over HTTP as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (defaults to the configured server addr)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()

	return withLookupHandler(ctx, func(d *Deps, h *handlers.LookupHandler) error {
		if addr == "" {
			addr = d.Config.Server.Addr
		}

		server := &http.Server{
			Addr:              addr,
			Handler:           newHTTPHandler(h, d.Logger),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			d.Logger.Info("starting server", zap.String("addr", addr), zap.String("game", string(d.Game)))
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serving: %w", err)
		case <-ctx.Done():
		}

		d.Logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	})
}

// newHTTPHandler wraps the router with panic recovery and access logging.
func newHTTPHandler(h *handlers.LookupHandler, logger *zap.Logger) http.Handler {
	var handler http.Handler = newRouter(h, logger)
	handler = gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(zap.NewStdLog(logger)),
		gorillahandlers.PrintRecoveryStack(true),
	)(handler)
	return gorillahandlers.CombinedLoggingHandler(os.Stderr, handler)
}
