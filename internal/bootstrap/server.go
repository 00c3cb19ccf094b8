package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flightregistry/api"
	"github.com/Domenick1991/flightregistry/config"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/Domenick1991/flightregistry/internal/service/flights"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run serves the HTTP API and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, logger *zap.Logger) error {
	srv := newServer(cfg, flightSvc, bookingSvc)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	}
}

func newServer(cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(flightSvc, bookingSvc, cfg.HTTP.AllowOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
