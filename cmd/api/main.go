package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/riffus/hyperswitch/api/routes"
	"github.com/riffus/hyperswitch/internal/forex"
	"github.com/riffus/hyperswitch/internal/health"
	"github.com/riffus/hyperswitch/internal/paymentlinks"
	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/config"
	"github.com/riffus/hyperswitch/pkg/db"
	"github.com/riffus/hyperswitch/pkg/logger"
	"github.com/riffus/hyperswitch/pkg/metrics"
	"github.com/riffus/hyperswitch/pkg/migrate"
	"github.com/riffus/hyperswitch/pkg/pubsub"
	"github.com/riffus/hyperswitch/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	linkMetrics := metrics.NewPaymentLinkMetrics(registry)

	var linkStore paymentlinks.Store = paymentlinks.NewRepository(dbClient.DB())
	if cfg.FeatureFlags.PublishEvents {
		pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		defer func() {
			if err := pubsubClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing pubsub", err)
			}
		}()
		linkStore = paymentlinks.NewEventStore(linkStore, pubsubClient, clock.System(), logg)
	}

	linkService := paymentlinks.NewService(paymentlinks.ServiceParams{
		Store:         linkStore,
		Clock:         clock.System(),
		Metrics:       linkMetrics,
		Logger:        logg,
		SDKURL:        cfg.PaymentLink.SDKURL,
		DefaultDomain: cfg.PaymentLink.DefaultDomain,
	})

	forexService := forex.NewService(forex.ServiceParams{
		Fetcher: forex.NewHTTPFetcher(cfg.Forex, nil),
		Cache:   redisClient,
		Config:  cfg.Forex,
		Clock:   clock.System(),
		Logger:  logg,
	})

	healthService := health.NewService(health.ServiceParams{
		DB:     dbClient.DB(),
		Redis:  redisClient,
		Locker: cfg.Locker,
		Logger: logg,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, healthService, linkService, forexService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
