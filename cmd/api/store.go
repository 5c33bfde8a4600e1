package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/mediahub/internal/api/handler"
	"github.com/hszk-dev/mediahub/internal/config"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
	"github.com/hszk-dev/mediahub/internal/infrastructure/memory"
	"github.com/hszk-dev/mediahub/internal/infrastructure/mongodb"
	"github.com/hszk-dev/mediahub/internal/infrastructure/postgres"
)

// repositories is the set of record stores selected by STORE_DRIVER.
type repositories struct {
	users         repository.UserRepository
	videos        repository.VideoRepository
	comments      repository.CommentRepository
	tweets        repository.TweetRepository
	playlists     repository.PlaylistRepository
	subscriptions repository.SubscriptionRepository

	ping  handler.Checker
	close func()
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := mongodb.NewClient(ctx, mongodb.DefaultClientConfig(cfg.Mongo.URI, cfg.Mongo.Database))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		db := client.Database()
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Close(context.Background())
			return nil, fmt.Errorf("failed to ensure indexes: %w", err)
		}
		logger.Info("connected to MongoDB", slog.String("database", cfg.Mongo.Database))

		return &repositories{
			users:         mongodb.NewUserRepository(db),
			videos:        mongodb.NewVideoRepository(db),
			comments:      mongodb.NewCommentRepository(db),
			tweets:        mongodb.NewTweetRepository(db),
			playlists:     mongodb.NewPlaylistRepository(db),
			subscriptions: mongodb.NewSubscriptionRepository(db),
			ping:          client.Ping,
			close: func() {
				if err := client.Close(context.Background()); err != nil {
					logger.Warn("failed to disconnect MongoDB", slog.String("error", err.Error()))
				}
			},
		}, nil

	case config.DriverPostgres:
		client, err := postgres.NewClient(ctx, cfg.Database.DSN(), postgres.WithMaxConns(cfg.Database.MaxConns))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, client.Pool()); err != nil {
			client.Close()
			return nil, err
		}
		logger.Info("connected to PostgreSQL", slog.Int("max_conns", int(client.MaxConns())))

		pool := client.Pool()
		return &repositories{
			users:         postgres.NewUserRepository(pool),
			videos:        postgres.NewVideoRepository(pool),
			comments:      postgres.NewCommentRepository(pool),
			tweets:        postgres.NewTweetRepository(pool),
			playlists:     postgres.NewPlaylistRepository(pool),
			subscriptions: postgres.NewSubscriptionRepository(pool),
			ping:          client.Ping,
			close:         client.Close,
		}, nil

	default:
		logger.Warn("using in-memory store, records are lost on restart")
		s := memory.NewStore()
		return &repositories{
			users:         memory.NewUserRepository(s),
			videos:        memory.NewVideoRepository(s),
			comments:      memory.NewCommentRepository(s),
			tweets:        memory.NewTweetRepository(s),
			playlists:     memory.NewPlaylistRepository(s),
			subscriptions: memory.NewSubscriptionRepository(s),
			close:         func() {},
		}, nil
	}
}
