package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const entityComment = "comment"

// ListCommentsInput holds a video and its raw paging parameters.
type ListCommentsInput struct {
	VideoID       uuid.UUID
	Page          string
	Limit         string
	SortField     string
	SortDirection string
}

// CommentService defines the comment operations.
type CommentService interface {
	ListComments(ctx context.Context, input ListCommentsInput) ([]*model.Comment, error)

	// AddComment returns a not-found failure when the video does not exist.
	AddComment(ctx context.Context, actor, videoID uuid.UUID, content string) (*model.Comment, error)

	UpdateComment(ctx context.Context, actor, commentID uuid.UUID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, actor, commentID uuid.UUID) (*model.Comment, error)
}

// CommentServiceConfig holds configuration for CommentService.
type CommentServiceConfig struct {
	Limits query.Limits
}

// DefaultCommentServiceConfig returns the default configuration.
func DefaultCommentServiceConfig() CommentServiceConfig {
	return CommentServiceConfig{Limits: query.DefaultLimits()}
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository

	limits query.Limits
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(
	comments repository.CommentRepository,
	videos repository.VideoRepository,
	cfg CommentServiceConfig,
) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
		limits:   cfg.Limits,
	}
}

func (s *commentService) ListComments(ctx context.Context, input ListCommentsInput) ([]*model.Comment, error) {
	plan := query.CommentFeed.Build(query.FeedParams{
		Page:          query.ParsePage(input.Page, input.Limit, s.limits),
		SortField:     input.SortField,
		SortDirection: input.SortDirection,
		Scope:         []query.Eq{{Field: query.FieldVideo, Value: input.VideoID}},
	})

	comments, err := s.comments.Find(ctx, plan)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return comments, nil
}

func (s *commentService) AddComment(ctx context.Context, actor, videoID uuid.UUID, content string) (*model.Comment, error) {
	comment, err := model.NewComment(actor, videoID, content)
	if err != nil {
		return nil, invalid(err)
	}

	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, translate(err, entityVideo)
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, translate(err, entityComment)
	}
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actor, commentID uuid.UUID, content string) (*model.Comment, error) {
	if _, err := loadOwned(ctx, s.comments.GetByID, commentID, actor, entityComment); err != nil {
		return nil, err
	}
	if err := model.ValidateContent(content); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.comments.UpdateContent(ctx, commentID, actor, content)
	if err != nil {
		return nil, translate(err, entityComment)
	}
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, actor, commentID uuid.UUID) (*model.Comment, error) {
	deleted, err := s.comments.Delete(ctx, commentID, actor)
	if err != nil {
		if !isNotFound(err) {
			return nil, apperr.Store(err)
		}
		return nil, explainMiss(ctx, s.comments.GetByID, commentID, actor, entityComment)
	}
	return deleted, nil
}
