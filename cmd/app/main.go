package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightregistry/config"
	"github.com/Domenick1991/flightregistry/internal/bootstrap"
	"github.com/Domenick1991/flightregistry/internal/cache"
	"github.com/Domenick1991/flightregistry/internal/demo"
	"github.com/Domenick1991/flightregistry/internal/kafka"
	"github.com/Domenick1991/flightregistry/internal/logger"
	"github.com/Domenick1991/flightregistry/internal/repository"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/Domenick1991/flightregistry/internal/service/flights"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	runDemo := flag.Bool("demo", false, "run the booking demonstration and print it to stdout")
	flag.Parse()

	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg := logger.New(cfg.App.Env, cfg.App.LogLevel)
	defer lg.Sync()

	if *runDemo || cfg.Demo.Enabled {
		if _, err := demo.Run(os.Stdout, lg); err != nil {
			lg.Fatal("demo failed", zap.Error(err))
		}
	}

	if !cfg.HTTP.Enabled {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []booking.BookingServiceOption
	var boardCache flights.BoardCache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			lg.Warn("redis unavailable, serving flight board uncached", zap.Error(err))
		} else {
			boardCache = redisCache
			opts = append(opts, booking.WithCache(redisCache))
		}
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			lg.Warn("kafka unavailable, booking events disabled", zap.Error(err))
		} else {
			opts = append(opts,
				booking.WithProducer(producer, cfg.Kafka.BookingTopic),
				booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
				booking.WithPublishRetries(cfg.Kafka.PublishRetries),
			)
		}
	}

	bookingService := booking.NewBookingService(
		booking.NewManager(lg),
		repository.NewPassengerRepository(),
		lg,
		opts...,
	)
	flightService := flights.NewFlightService(bookingService, boardCache)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, lg); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}
