package cmd

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
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

func newServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Log on and run the tracker and the HTTP control plane",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := app.buildRuntime(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			return rt.serve(ctx)
		},
	}
}

// serve blocks until ctx ends or one of the loops fails. A failed logon
// does not stop the process: /health reports degraded and every platform
// call fails with a session error until restart.
func (r *runtime) serve(ctx context.Context) error {
	if !r.cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := r.cfg.Credentials.Validate(); err != nil {
		return fmt.Errorf("validate credentials: %w", err)
	}

	if err := r.session.Start(ctx); err != nil {
		r.logger.Error("platform logon failed, serving degraded", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              r.cfg.HTTP.Addr,
		Handler:           r.server.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.dispatcher.Run(gctx)
	})
	g.Go(func() error {
		return r.session.Run(gctx)
	})
	g.Go(func() error {
		return r.tracker.Run(gctx, r.dispatcher)
	})
	g.Go(func() error {
		r.logger.Info("control plane listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	})

	err := g.Wait()
	r.logger.Info("stopped")
	return err
}
