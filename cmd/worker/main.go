package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/hszk-dev/mediahub/internal/config"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
	"github.com/hszk-dev/mediahub/internal/infrastructure/cache"
	"github.com/hszk-dev/mediahub/internal/infrastructure/queue"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.RabbitMQ.Enabled() || !cfg.Redis.Enabled() {
		return errors.New("worker needs both RABBITMQ_HOST and REDIS_ADDR")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer consumer.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("worker dependencies ready", slog.String("queue", "activity_events"))

	activity := usecase.NewActivityHandler(
		cache.NewRedisSubscriberCounter(redisClient),
		usecase.ActivityHandlerConfig{MaxRetries: cfg.Worker.MaxRetries},
	)

	return serve(ctx, logger, cfg.Worker, consumer, activity.Handle)
}

// serve runs the consumer next to a metrics listener until ctx is cancelled.
// Deliveries are handled one at a time and each handler call is bounded by
// the queue's handler timeout, so Wait returns once the in-flight event is
// settled.
func serve(ctx context.Context, logger *slog.Logger, cfg config.WorkerConfig, consumer repository.MessageQueue, handle repository.EventHandler) error {
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := consumer.ConsumeEvents(gctx, func(hctx context.Context, event repository.ActivityEvent) error {
			if err := handle(hctx, event); err != nil {
				logger.Error("event processing failed",
					slog.String("event_id", event.ID.String()),
					slog.String("type", string(event.Type)),
					slog.Int("retry_count", event.RetryCount),
					slog.String("error", err.Error()),
				)
				return err
			}
			return nil
		})
		if gctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("consumer stopped: %w", err)
	})

	g.Go(func() error {
		logger.Info("serving worker metrics", slog.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down worker")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("worker stopped")
	return nil
}
