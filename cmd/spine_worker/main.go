package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/posting_spine/internal/core/services"
	"github.com/SscSPs/posting_spine/internal/platform/config"
	rediscache "github.com/SscSPs/posting_spine/internal/repositories/cache/redis"
	"github.com/SscSPs/posting_spine/internal/repositories/database/pgsql"
	"github.com/SscSPs/posting_spine/internal/worker"
	"github.com/SscSPs/posting_spine/pkg/database"
	"github.com/hibiken/asynq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("component", "spine_worker"))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error("REDIS_ADDR is required to run the worker")
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	redisClient, err := database.NewRedisClient(ctx, database.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	serviceContainer := services.NewServiceContainer(
		pgsql.NewRepositoryProvider(dbPool),
		services.WithResultStore(rediscache.NewReconciliationResultStore(redisClient), cfg.ReconciliationResultTTL),
	)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		asynq.Config{
			Concurrency: cfg.WorkerConcurrency,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Task failed", slog.String("task_type", task.Type()), slog.String("error", err.Error()))
			}),
		},
	)

	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux, serviceContainer.Reconciliation, logger)

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Info("Gracefully shutting down worker...")
		srv.Shutdown()
	}()

	logger.Info("Worker starting", slog.Int("concurrency", cfg.WorkerConcurrency))
	if err := srv.Run(mux); err != nil {
		logger.Error("Worker failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Worker exited")
}
