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

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/mediahub/internal/api/handler"
	"github.com/hszk-dev/mediahub/internal/api/middleware"
	"github.com/hszk-dev/mediahub/internal/config"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
	"github.com/hszk-dev/mediahub/internal/infrastructure/cache"
	"github.com/hszk-dev/mediahub/internal/infrastructure/queue"
	"github.com/hszk-dev/mediahub/internal/infrastructure/storage"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET must be set")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.close()

	checks := map[string]handler.Checker{}
	if repos.ping != nil {
		checks["store"] = repos.ping
	}

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
		PublicURL: cfg.MinIO.PublicURL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	checks["storage"] = storageClient.Ping
	logger.Info("connected to MinIO", slog.String("bucket", storageClient.Bucket()))

	// Event publishing is optional; services skip a nil publisher.
	var publisher repository.EventPublisher
	if cfg.RabbitMQ.Enabled() {
		queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer queueClient.Close()
		publisher = queueClient
		logger.Info("connected to RabbitMQ")
	}

	limits := query.Limits{DefaultLimit: cfg.Feed.DefaultLimit, MaxLimit: cfg.Feed.MaxLimit}

	videoSvc := usecase.NewVideoService(repos.videos, storageClient, publisher, usecase.VideoServiceConfig{Limits: limits})

	var counter cache.SubscriberCounter
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("connected to Redis")
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }

		videoSvc = usecase.NewCachedVideoService(videoSvc, cache.NewRedisVideoCache(redisClient), usecase.CachedVideoServiceConfig{
			CacheTTL: cfg.Redis.CacheTTL,
		})
		counter = cache.NewRedisSubscriberCounter(redisClient)
	}

	handlers := handler.Handlers{
		Videos: handler.NewVideoHandler(videoSvc),
		Comments: handler.NewCommentHandler(usecase.NewCommentService(repos.comments, repos.videos, usecase.CommentServiceConfig{
			Limits: limits,
		})),
		Tweets: handler.NewTweetHandler(usecase.NewTweetService(repos.tweets)),
		Playlists: handler.NewPlaylistHandler(usecase.NewPlaylistService(repos.playlists, usecase.PlaylistServiceConfig{
			EmptyAsNotFound: cfg.Feed.EmptyPlaylistNotFound,
		})),
		Subscriptions: handler.NewSubscriptionHandler(usecase.NewSubscriptionService(repos.subscriptions, repos.users, counter, publisher, usecase.SubscriptionServiceConfig{
			EmptyAsNotFound:       cfg.Feed.EmptyGraphAsNotFound,
			AllowSelfSubscription: cfg.Feed.AllowSelfSubscription,
		})),
	}

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	health := handler.NewHealthHandler(checks, cfg.Server.HealthTimeout)
	r := setupRouter(logger, auth, health, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.Int("port", cfg.Server.Port),
			slog.String("store", cfg.Store.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func setupRouter(logger *slog.Logger, auth *middleware.Authenticator, health *handler.HealthHandler, h handler.Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger, handler.Fail))

	r.Get("/health", health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(auth.Middleware(handler.Fail))
		h.Register(r)
	})

	return r
}
