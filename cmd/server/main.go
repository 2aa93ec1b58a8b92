package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/blockview/internal/adapter/http"
	"github.com/iho/blockview/internal/adapter/http/handler"
	"github.com/iho/blockview/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/blockview/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/blockview/internal/adapter/repository/redis"
	"github.com/iho/blockview/internal/infrastructure/config"
	"github.com/iho/blockview/internal/infrastructure/logger"
	"github.com/iho/blockview/internal/infrastructure/metrics"
	"github.com/iho/blockview/internal/infrastructure/postgres"
	"github.com/iho/blockview/internal/infrastructure/redis"
	"github.com/iho/blockview/internal/infrastructure/render"
	"github.com/iho/blockview/internal/usecase"
)

const (
	limiterEvictionInterval = 5 * time.Minute
	limiterIdleTimeout      = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.SetGlobal(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}

	appLogger.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(connectCtx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(connectCtx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	formatter, err := render.New(cfg.PayloadFormat)
	if err != nil {
		return err
	}

	appMetrics := metrics.New()
	observer := appMetrics.Observer()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	blockRepo := postgresRepo.NewBlockRepository(pool)
	holdingRepo := postgresRepo.NewHoldingAccountRepository(pool)
	networkRepo := postgresRepo.NewNetworkRepository(pool)
	retrier := postgresRepo.NewRetrier(postgresRepo.DefaultRetrierConfig(), appLogger)
	ownershipCache := redisRepo.NewOwnershipCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	ownershipUC := usecase.NewOwnershipUseCase(
		holdingRepo,
		ownershipCache,
		postgresRepo.NewULIDGenerator("hld"),
		observer,
		cfg.OwnershipCacheTTL,
	)
	networkUC := usecase.NewNetworkUseCase(networkRepo)
	blockUC := usecase.NewBlockUseCase(usecase.BlockUseCaseConfig{
		TxManager:   txManager,
		BlockRepo:   blockRepo,
		NetworkRepo: networkRepo,
		Ownership:   ownershipUC,
		IDGen:       postgresRepo.NewULIDGenerator("blk"),
		Retrier:     retrier,
		Formatter:   formatter,
		Observer:    observer,
	})

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.RunEviction(ctx, limiterEvictionInterval, limiterIdleTimeout)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BlockHandler:     handler.NewBlockHandler(blockUC),
		HoldingHandler:   handler.NewHoldingHandler(ownershipUC),
		NetworkHandler:   handler.NewNetworkHandler(networkUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Metrics:          appMetrics,
		Logger:           appLogger,
		AllowedOrigins:   cfg.CORSAllowedOrigins,
	})

	return serve(ctx, newServer(cfg, router), cfg.HTTPShutdownTimeout, appLogger)
}

func newServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}

// serve runs server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, appLogger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}
