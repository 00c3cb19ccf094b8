package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/flightregistry/config"
	"github.com/Domenick1991/flightregistry/internal/repository"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/Domenick1991/flightregistry/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRun_StopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"

	bookingSvc := booking.NewBookingService(booking.NewManager(nil), repository.NewPassengerRepository(), nil)
	flightSvc := flights.NewFlightService(bookingSvc, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, flightSvc, bookingSvc, zap.NewNop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
