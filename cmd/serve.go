package main

import (
	"context"
	"correcthorse/internal/api"
	"correcthorse/internal/api/handler/v1handler"
	"correcthorse/internal/config"
	"correcthorse/pkg/logger"
	"correcthorse/pkg/metrics"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the HTTP server in the background and returns a function
// stopping it, plus a channel reporting a failure to serve.
func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) (func(ctx context.Context), <-chan error, error) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create webserver: %w", err)
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not listen on %s: %w", server.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "could not serve", zap.Error(err))
			errCh <- err
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}, errCh, nil
}

func serveCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serves passphrases over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			mp, err := metrics.NewMeterProvider(reg)
			if err != nil {
				return err //nolint: wrapcheck
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}
			}()

			c, err := g.composer(mp, true)
			if err != nil {
				return err
			}

			stopWebserver, serveErr, err := setupServer(ctx, g.cfg, api.Deps{
				Deps:     v1handler.Deps{Composer: c},
				Registry: reg,
			})
			if err != nil {
				return err
			}

			// wait for interrupt
			select {
			case <-ctx.Done():
			case err := <-serveErr:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), g.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			return nil
		},
	}

	return cmd
}
