package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/dkotenko/gotransfer/internal/adapter/http"
	"github.com/dkotenko/gotransfer/internal/adapter/http/handler"
	"github.com/dkotenko/gotransfer/internal/adapter/repository/memory"
	redisRepo "github.com/dkotenko/gotransfer/internal/adapter/repository/redis"
	"github.com/dkotenko/gotransfer/internal/infrastructure/config"
	"github.com/dkotenko/gotransfer/internal/infrastructure/logger"
	"github.com/dkotenko/gotransfer/internal/infrastructure/redis"
	"github.com/dkotenko/gotransfer/internal/seed"
	"github.com/dkotenko/gotransfer/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Redis is optional; without it idempotency replay is simply off.
	var idempotencyStore usecase.IdempotencyStore
	var readinessClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		readinessClient = redisClient
	}

	idGen := memory.NewULIDGenerator()

	// The ledger is in-memory; every process starts from a generated
	// directory of holders and accounts.
	seedCfg := seed.DefaultConfig()
	seedCfg.Holders = cfg.SeedHolders
	holders, err := seed.Holders(seedCfg, idGen)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed directory")
	}
	holderRepo := memory.NewHolderRepository(holders)

	for _, h := range holders {
		appLogger.Info().
			Str("holder_id", h.ID()).
			Str("full_name", h.FullName()).
			Int("accounts", len(h.Accounts())).
			Msg("seeded holder")
	}

	retry := usecase.RetryPolicy{
		MaxRetries:      cfg.TransferMaxRetries,
		InitialInterval: cfg.TransferRetryInterval,
	}
	transferUC := usecase.NewTransferUseCase(holderRepo, idGen, appLogger, retry)
	holderUC := usecase.NewHolderUseCase(holderRepo)

	transferHandler := handler.NewTransferHandler(transferUC)
	holderHandler := handler.NewHolderHandler(holderUC)
	healthHandler := handler.NewHealthHandler(readinessClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransferHandler:  transferHandler,
		HolderHandler:    holderHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Logger:           appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
