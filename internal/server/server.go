package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/config"
	appgrpc "github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/grpc"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// Start serves handler on APP_PORT (plus the gRPC health service when
// GRPC_PORT is set) until SIGINT or SIGTERM, then drains both.
func Start(handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, ":"+config.AppPort(), handler)
}

// Run is Start with an explicit address and lifetime.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if port := config.GRPCPort(); port != "" {
		grpcSrv, err := appgrpc.Start(port)
		if err != nil {
			return err
		}
		defer appgrpc.Stop(grpcSrv)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "app", config.AppName(), "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
