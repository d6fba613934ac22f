package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// runHTTP serves until ctx is done, then shuts the server down gracefully.
// Each background func runs alongside the server and must return once its
// context is cancelled.
func runHTTP(ctx context.Context, srv *http.Server, log *zap.Logger, background ...func(context.Context)) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, run := range background {
		run := run // per-iteration copy (go directive lowered to 1.21 for the local toolchain)
		g.Go(func() error {
			run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
