package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const entityTweet = "tweet"

// TweetService defines the tweet operations.
type TweetService interface {
	CreateTweet(ctx context.Context, actor uuid.UUID, content string) (*model.Tweet, error)

	// ListUserTweets returns the tweets of a user, newest first. A user
	// without tweets gets an empty list.
	ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*model.Tweet, error)

	UpdateTweet(ctx context.Context, actor, tweetID uuid.UUID, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) (*model.Tweet, error)
}

type tweetService struct {
	tweets repository.TweetRepository
}

// NewTweetService creates a new TweetService instance.
func NewTweetService(tweets repository.TweetRepository) TweetService {
	return &tweetService{tweets: tweets}
}

func (s *tweetService) CreateTweet(ctx context.Context, actor uuid.UUID, content string) (*model.Tweet, error) {
	tweet, err := model.NewTweet(actor, content)
	if err != nil {
		return nil, invalid(err)
	}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, translate(err, entityTweet)
	}
	return tweet, nil
}

func (s *tweetService) ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*model.Tweet, error) {
	tweets, err := s.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if tweets == nil {
		tweets = []*model.Tweet{}
	}
	return tweets, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, actor, tweetID uuid.UUID, content string) (*model.Tweet, error) {
	if _, err := loadOwned(ctx, s.tweets.GetByID, tweetID, actor, entityTweet); err != nil {
		return nil, err
	}
	if err := model.ValidateContent(content); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.tweets.UpdateContent(ctx, tweetID, actor, content)
	if err != nil {
		return nil, translate(err, entityTweet)
	}
	return updated, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) (*model.Tweet, error) {
	deleted, err := s.tweets.Delete(ctx, tweetID, actor)
	if err != nil {
		if !isNotFound(err) {
			return nil, apperr.Store(err)
		}
		return nil, explainMiss(ctx, s.tweets.GetByID, tweetID, actor, entityTweet)
	}
	return deleted, nil
}
