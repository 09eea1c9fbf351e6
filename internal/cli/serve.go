package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dashkit/internal/config"
	api "dashkit/internal/http"
	"dashkit/internal/services"
	"dashkit/internal/watch"
)

const refreshTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(nil)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}

// serve runs the API until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, cfg config.Config) error {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	a, err := bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Auth.SeedDemo {
		if err := a.auth().SeedDemoUsers(ctx); err != nil {
			return fmt.Errorf("seed demo users: %w", err)
		}
	}
	hd, err := a.handler()
	if err != nil {
		return err
	}

	var refresher *services.Refresher
	if a.db != nil && cfg.Refresh.Schedule != "" {
		if refresher, err = services.NewRefresher(a.catalog.Registry, cfg.Refresh.Schedule, refreshTimeout); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(cfg, hd),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if refresher != nil {
		g.Go(func() error { return refresher.Run(gctx) })
	}
	if cfg.Fixtures.Path != "" && cfg.Fixtures.Watch {
		w := watch.FileWatcher{
			Path:     cfg.Fixtures.Path,
			Debounce: watch.DefaultDebounce,
			OnChange: func(path string) {
				if err := a.reloadFixtures(path); err != nil {
					log.Error().Err(err).Msg("fixture reload failed, keeping previous data")
				}
			},
		}
		g.Go(func() error { return w.Run(gctx) })
	}

	err = g.Wait()
	log.Info().Msg("server stopped")
	return err
}
