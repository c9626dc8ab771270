package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"evaluation_service/config"
	"evaluation_service/internal/authz"
	"evaluation_service/internal/directory"
	"evaluation_service/internal/lifecycle"
	"evaluation_service/internal/repository/memory"
	"evaluation_service/internal/repository/postgres"
	"evaluation_service/internal/server/health"
	"evaluation_service/internal/server/httpapi"
	"evaluation_service/internal/service"
	"evaluation_service/pkg/db"
	"evaluation_service/pkg/kafka"
	"evaluation_service/pkg/logger"
	"evaluation_service/pkg/telemetry"
)

const serviceName = "evaluation-service"

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Build(cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal(ctx, "service stopped with error", zap.Error(err))
	}
	log.Info(ctx, "service stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: serviceName,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	store, pinger, closeStore, err := buildStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	dir, err := buildDirectory(cfg, rdb)
	if err != nil {
		return err
	}

	var locker service.Locker = service.NewKeyedLocker()
	if rdb != nil {
		locker = service.NewRedisLocker(rdb, "evaluation:lock:", cfg.Redis.LockTTL)
	}

	var notifier service.Notifier = service.LogNotifier{}
	if cfg.Kafka.Enabled() {
		kcfg := kafka.Config{
			Brokers:          cfg.Kafka.Brokers,
			Topic:            cfg.Kafka.LifecycleTopic,
			MaxRetries:       cfg.Kafka.MaxRetries,
			BaseDelay:        cfg.Kafka.BaseDelay,
			FailureThreshold: cfg.Kafka.FailureThreshold,
			ResetTimeout:     cfg.Kafka.ResetTimeout,
		}
		kn := kafka.NewNotifier(kafka.NewWriter(kcfg), kcfg)
		defer kn.Close()
		notifier = kn
	}

	clock := lifecycle.SystemClock()
	engine := authz.NewEngine(store, dir, clock, authz.Policy{
		InstructorsCreateEvaluations: !cfg.Policy.AdminsOnlyCreateEvaluations,
		AdminUnassignRunning:         cfg.Policy.AdminUnassignRunning,
	})
	lifecycleService := service.NewLifecycleService(store, notifier, locker, clock)
	assignmentService := service.NewAssignmentService(store, engine, notifier, locker, clock)
	responseService := service.NewResponseService(store, dir)

	handler := httpapi.NewHandler(lifecycleService, assignmentService, responseService, engine, cfg.HTTP.MaxBodyBytes)
	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:      httpapi.NewRouter(handler, log, httpapi.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	healthServer := health.NewServer(log, pinger, cfg.Health.PingInterval)
	healthLis, err := net.Listen("tcp", cfg.Health.GRPCAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Health.GRPCAddress, err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info(ctx, "starting health server", zap.String("address", cfg.Health.GRPCAddress))
		if err := healthServer.Serve(ctx, healthLis); err != nil {
			errCh <- fmt.Errorf("health server: %w", err)
		}
	}()
	go func() {
		log.Info(ctx, "starting http server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go NewSweepWorker(lifecycleService, log, cfg.Sweep.Interval, cfg.Sweep.BatchSize).Start(ctx)

	var runErr error
	select {
	case <-ctx.Done():
		log.Info(ctx, "shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "http shutdown failed", zap.Error(err))
	}
	return runErr
}

func buildStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (service.Store, health.Pinger, func(), error) {
	if cfg.Storage.Driver == config.DriverMemory {
		log.Warn(ctx, "using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil, func() {}, nil
	}

	dbCfg := db.Config{
		URL:             cfg.Storage.PostgresURL,
		MaxConns:        cfg.Storage.MaxConns,
		MinConns:        cfg.Storage.MinConns,
		MaxConnLifetime: cfg.Storage.MaxConnLifetime,
		MigrationsPath:  cfg.Storage.MigrationsPath,
	}
	if cfg.Storage.AutoMigrate {
		if err := db.Migrate(ctx, dbCfg); err != nil {
			return nil, nil, nil, err
		}
		log.Info(ctx, "migrations applied")
	}

	pool, err := db.NewPool(ctx, dbCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return postgres.NewStore(pool), pool, pool.Close, nil
}

func buildDirectory(cfg *config.Config, rdb *redis.Client) (service.Directory, error) {
	roster, err := directory.LoadRoster(cfg.Directory.RosterPath)
	if err != nil {
		return nil, err
	}
	var dir service.Directory = directory.NewStaticDirectory(roster)
	if rdb != nil {
		dir = directory.NewCachedDirectory(dir, directory.NewRedisCache(rdb), cfg.Redis.DirectoryTTL)
	}
	return dir, nil
}
