package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/shop-dashboard/internal/application/dashboard"
	"github.com/TemirB/shop-dashboard/internal/application/handler"
	"github.com/TemirB/shop-dashboard/internal/application/service"
	"github.com/TemirB/shop-dashboard/internal/cache"
	"github.com/TemirB/shop-dashboard/internal/config"
	"github.com/TemirB/shop-dashboard/internal/database/memory"
	"github.com/TemirB/shop-dashboard/internal/database/mongo"
	"github.com/TemirB/shop-dashboard/internal/database/postgres"
	"github.com/TemirB/shop-dashboard/internal/domain"
	"github.com/TemirB/shop-dashboard/internal/httpapi"
	"github.com/TemirB/shop-dashboard/internal/kafka"
	"github.com/TemirB/shop-dashboard/internal/observability"
	"github.com/TemirB/shop-dashboard/internal/pkg/breaker"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Application stopped with error", zap.Error(err))
	}
	logger.Info("Application stopped")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("Error while closing store", zap.Error(err))
		}
	}()

	c, closeCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	var (
		metrics     observability.Metrics
		httpOptions []httpapi.Option
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		prom := observability.NewPrometheus(reg)
		metrics = prom
		httpOptions = append(httpOptions, httpapi.WithMetricsHandler(prom.Handler()))
	} else {
		metrics = observability.NewInmem(1000)
	}

	loader := cache.NewLoader(c, logger, metrics)
	invalidator := cache.NewInvalidator(loader, logger, metrics)
	svc := service.NewService(store, loader, invalidator, cfg.ProductPerPage, logger, metrics)
	dash := dashboard.New(store.Orders, store.Products, store.Users, loader, logger)

	warmCtx, cancelWarm := context.WithTimeout(ctx, 30*time.Second)
	if err := dash.Warm(warmCtx); err != nil {
		logger.Warn("Dashboard cache was not fully warmed", zap.Error(err))
	}
	cancelWarm()

	server := httpapi.New(svc, dash, logger, metrics, httpOptions...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx, cfg.HTTPAddr)
	})

	if cfg.KafkaEnabled() {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka, kafka.DefaultTopic, logger); err != nil {
			logger.Warn("Could not ensure kafka topic", zap.Error(err))
		}

		reader := kafka.NewReader(cfg.Kafka)
		defer func() {
			if err := reader.Close(); err != nil {
				logger.Warn("Error while closing kafka reader", zap.Error(err))
			}
		}()

		h := handler.NewHandler(svc, breaker.New(cfg.Breaker), cfg.Retry, logger)
		consumer := kafka.NewConsumer(h, reader, cfg.Kafka.Workers, metrics, logger)
		g.Go(func() error {
			consumer.Start(gctx)
			return nil
		})
	} else {
		logger.Info("KAFKA_BROKERS is empty, order stream intake disabled")
	}

	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*domain.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		tables := postgres.Tables{
			Schema:   cfg.Tables.Schema,
			Orders:   cfg.Tables.Orders,
			Products: cfg.Tables.Products,
			Users:    cfg.Tables.Users,
			Coupons:  cfg.Tables.Coupons,
		}
		if err := postgres.Migrate(ctx, pool, tables); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("Using postgres store", zap.String("schema", tables.Schema))
		return postgres.New(pool, tables), nil

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, cfg.Mongo.URI, logger)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.DB)
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		logger.Info("Using mongo store", zap.String("db", cfg.Mongo.DB))
		return mongo.New(client, db), nil

	case config.DriverMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openCache(ctx context.Context, cfg config.Config, logger *zap.Logger) (cache.Cache, func(), error) {
	if cfg.CacheBackend == config.CacheRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		logger.Info("Using redis cache", zap.String("addr", cfg.Redis.Addr))
		return cache.NewRedis(rdb, cfg.Redis.Prefix), func() { _ = rdb.Close() }, nil
	}

	c, err := cache.NewMemory(cfg.CacheCap)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using in-process LRU cache", zap.Int("capacity", cfg.CacheCap))
	return c, func() {}, nil
}
