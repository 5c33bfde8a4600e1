package usecase

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const entityVideo = "video"

// FileUpload is an uploaded file as received by the HTTP layer.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// PublishVideoInput contains the input parameters for publishing a video.
type PublishVideoInput struct {
	Actor       uuid.UUID
	Title       string
	Description string
	Duration    float64
	VideoFile   *FileUpload
	Thumbnail   *FileUpload
}

// UpdateVideoInput carries a partial update. Nil fields are left untouched.
type UpdateVideoInput struct {
	Actor       uuid.UUID
	VideoID     uuid.UUID
	Title       *string
	Description *string
	Duration    *float64
	Thumbnail   *FileUpload
}

// ListVideosInput holds the raw feed parameters of a video listing.
type ListVideosInput struct {
	Page          string
	Limit         string
	Query         string
	SortField     string
	SortDirection string
	Owner         uuid.UUID
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// PublishVideo uploads both assets and stores an unpublished video.
	PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error)

	// ListVideos returns one page of the video feed.
	ListVideos(ctx context.Context, input ListVideosInput) ([]*model.Video, error)

	// GetVideo retrieves video information by ID.
	GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error)

	// UpdateVideo applies a partial update. Only the owner may update.
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error)

	// DeleteVideo removes a video owned by actor and returns it.
	DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error)

	// TogglePublish flips the published flag of a video owned by actor.
	TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error)
}

// VideoServiceConfig holds configuration for VideoService.
type VideoServiceConfig struct {
	Limits query.Limits
}

// DefaultVideoServiceConfig returns the default configuration.
func DefaultVideoServiceConfig() VideoServiceConfig {
	return VideoServiceConfig{
		Limits: query.DefaultLimits(),
	}
}

type videoService struct {
	repo   repository.VideoRepository
	assets repository.AssetStore
	events eventEmitter

	limits query.Limits
}

// NewVideoService creates a new VideoService instance.
// publisher may be nil, in which case no activity events are emitted.
func NewVideoService(
	repo repository.VideoRepository,
	assets repository.AssetStore,
	publisher repository.EventPublisher,
	cfg VideoServiceConfig,
) VideoService {
	return &videoService{
		repo:   repo,
		assets: assets,
		events: eventEmitter{publisher: publisher},
		limits: cfg.Limits,
	}
}

func (s *videoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	if err := validatePublishInput(input); err != nil {
		return nil, err
	}

	videoKey := s.assetKey("videos", input.Actor, input.VideoFile.Filename)
	videoURL, err := s.upload(ctx, videoKey, input.VideoFile)
	if err != nil {
		return nil, apperr.Upload("video file upload failed", err)
	}

	thumbnailURL, err := s.upload(ctx, s.assetKey("thumbnails", input.Actor, input.Thumbnail.Filename), input.Thumbnail)
	if err != nil {
		s.discard(ctx, videoKey)
		return nil, apperr.Upload("thumbnail upload failed", err)
	}

	video, err := model.NewVideo(input.Actor, input.Title, input.Description, input.Duration, videoURL, thumbnailURL)
	if err != nil {
		return nil, invalid(err)
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, translate(err, entityVideo)
	}

	return video, nil
}

// validatePublishInput rejects bad input before anything is uploaded.
func validatePublishInput(input PublishVideoInput) error {
	switch {
	case input.Actor == uuid.Nil:
		return invalid(model.ErrInvalidOwner)
	case strings.TrimSpace(input.Title) == "":
		return invalid(model.ErrEmptyTitle)
	case strings.TrimSpace(input.Description) == "":
		return invalid(model.ErrEmptyDescription)
	case !model.ValidDuration(input.Duration):
		return invalid(model.ErrInvalidDuration)
	case input.VideoFile == nil:
		return invalid(model.ErrMissingVideoFile)
	case input.Thumbnail == nil:
		return invalid(model.ErrMissingThumbnail)
	}
	return nil
}

func (s *videoService) ListVideos(ctx context.Context, input ListVideosInput) ([]*model.Video, error) {
	plan := query.VideoFeed.Build(query.FeedParams{
		Page:          query.ParsePage(input.Page, input.Limit, s.limits),
		Query:         input.Query,
		SortField:     input.SortField,
		SortDirection: input.SortDirection,
		Owner:         input.Owner,
	})

	videos, err := s.repo.Find(ctx, plan)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return videos, nil
}

func (s *videoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, entityVideo)
	}
	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	if _, err := loadOwned(ctx, s.repo.GetByID, input.VideoID, input.Actor, entityVideo); err != nil {
		return nil, err
	}

	patch := model.VideoPatch{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
	}
	// A thumbnail alone is a valid patch; the fields are validated only when
	// something else is supplied.
	if input.Thumbnail == nil || !patch.IsEmpty() {
		if err := patch.Validate(); err != nil {
			return nil, invalid(err)
		}
	}

	if input.Thumbnail != nil {
		url, err := s.upload(ctx, s.assetKey("thumbnails", input.Actor, input.Thumbnail.Filename), input.Thumbnail)
		if err != nil {
			return nil, apperr.Upload("thumbnail upload failed", err)
		}
		patch.Thumbnail = &url
	}

	updated, err := s.repo.Update(ctx, input.VideoID, input.Actor, patch)
	if err != nil {
		return nil, translate(err, entityVideo)
	}
	return updated, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	deleted, err := s.repo.Delete(ctx, videoID, actor)
	if err != nil {
		if !isNotFound(err) {
			return nil, apperr.Store(err)
		}
		return nil, explainMiss(ctx, s.repo.GetByID, videoID, actor, entityVideo)
	}

	s.events.emit(ctx, repository.EventVideoDeleted, actor, deleted.ID)
	return deleted, nil
}

// TogglePublish is a read-modify-write; two concurrent toggles may cancel out.
func (s *videoService) TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	video, err := loadOwned(ctx, s.repo.GetByID, videoID, actor, entityVideo)
	if err != nil {
		return nil, err
	}

	published := !video.IsPublished
	updated, err := s.repo.Update(ctx, videoID, actor, model.VideoPatch{IsPublished: &published})
	if err != nil {
		return nil, translate(err, entityVideo)
	}

	eventType := repository.EventVideoUnpublished
	if updated.IsPublished {
		eventType = repository.EventVideoPublished
	}
	s.events.emit(ctx, eventType, actor, updated.ID)

	return updated, nil
}

func (s *videoService) upload(ctx context.Context, key string, file *FileUpload) (string, error) {
	url, err := s.assets.Upload(ctx, key, file.Reader, file.Size, file.ContentType)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", errEmptyAssetURL
	}
	return url, nil
}

// discard removes an asset that no record will reference.
func (s *videoService) discard(ctx context.Context, key string) {
	if err := s.assets.Delete(ctx, key); err != nil {
		slog.Warn("failed to remove orphaned asset",
			"key", key,
			"error", err,
		)
	}
}

// assetKey creates the storage key for an uploaded asset.
// Format: {prefix}/{owner_id}/{uuid}{ext}
func (s *videoService) assetKey(prefix string, owner uuid.UUID, filename string) string {
	return path.Join(prefix, owner.String(), uuid.NewString()+strings.ToLower(path.Ext(filename)))
}
