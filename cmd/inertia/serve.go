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

	httpAdapter "github.com/aretw0/inertia/internal/adapters/http"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/observability"
	"github.com/aretw0/inertia/pkg/scenario"
	"github.com/aretw0/inertia/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <scenario>",
	Short: "Run live characters and expose them over HTTP",
	Long: `Spawns characters built from the scenario's sources, ticks them at the scenario frame rate
and serves their poses, selection inputs, debug trees and metrics over HTTP.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		count, _ := cmd.Flags().GetInt("characters")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}
		hooks := domain.ChainHooks(metrics.Hooks(), observability.LogHooks(logger))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		mgr := session.NewManager(session.WithLogger(logger))
		runner := scenario.NewRunner(scenario.WithLogger(logger), scenario.WithHooks(hooks))

		var frame *domain.Frame
		for i := 0; i < count; i++ {
			id := fmt.Sprintf("%s-%d", sc.Name, i)
			node, f, err := runner.Build(ctx, sc, id, domain.LifecycleHooks{})
			if err != nil {
				return err
			}
			if err := mgr.Add(ctx, id, node, f); err != nil {
				return err
			}
			frame = f
		}
		if frame == nil {
			return errors.New("--characters must be at least 1")
		}

		go func() {
			if err := mgr.Run(ctx, frame); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("ticker stopped", "err", err)
			}
		}()

		srv := &http.Server{
			Addr: ":" + port,
			Handler: httpAdapter.NewHandler(&httpAdapter.Server{
				Sessions: mgr,
				Bones:    frame.Bones,
				Gatherer: reg,
				Logger:   logger,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %d characters of %q on %s\n", count, sc.Name, srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout(), "\nStart shutdown...")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().IntP("characters", "n", 1, "Number of characters to spawn")
}
