package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mkuznecov/northwind-api/internal/cache"
	"github.com/mkuznecov/northwind-api/internal/config"
	"github.com/mkuznecov/northwind-api/internal/database"
	"github.com/mkuznecov/northwind-api/internal/deleteguard"
	"github.com/mkuznecov/northwind-api/internal/events"
	"github.com/mkuznecov/northwind-api/internal/httpapi"
	"github.com/mkuznecov/northwind-api/internal/observability"
	"github.com/mkuznecov/northwind-api/internal/pkg/breaker"
	"github.com/mkuznecov/northwind-api/internal/pkg/retry"
	"github.com/mkuznecov/northwind-api/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The database container may come up after us, retry the first
	// connection.
	var pool *pgxpool.Pool
	if err := retry.Do(ctx, cfg.Retry, func() error {
		var cerr error
		pool, cerr = database.Connect(ctx, cfg, logger)
		return cerr
	}); err != nil {
		logger.Fatal("connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	customerRepo := database.NewCustomerRepo(pool)
	catalogRepo := database.NewCatalogRepo(pool)

	catalogCache, err := cache.New(cfg.CacheCap)
	if err != nil {
		logger.Fatal("init catalog cache", zap.Error(err))
	}

	guard := deleteguard.New(cfg.Guard.TTL)
	go guard.Run(ctx, cfg.Guard.SweepEvery)

	var publisher service.Publisher = events.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer kp.Close()
		publisher = kp
	}

	metrics := observability.NewPrometheus()
	brk := breaker.New(cfg.Breaker)

	customers := service.NewCustomers(customerRepo, guard, publisher, brk, logger, metrics, cfg.DeleteTimeout)
	catalog := service.NewCatalog(catalogRepo, catalogCache, logger, metrics)

	server := httpapi.New(customers, catalog, logger, metrics)

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}
	logger.Info("server stopped")
}
