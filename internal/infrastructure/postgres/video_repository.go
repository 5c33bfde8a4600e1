package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const videoColumns = `id, owner_id, title, description, duration, video_file, thumbnail, is_published, created_at, updated_at`

var videoSelect = selectBuilder{
	table: "videos",
	list:  videoColumns,
	columns: map[string]string{
		query.FieldID:          "id",
		query.FieldOwner:       "owner_id",
		query.FieldTitle:       "title",
		query.FieldDescription: "description",
		query.FieldDuration:    "duration",
		query.FieldIsPublished: "is_published",
		query.FieldCreatedAt:   "created_at",
		query.FieldUpdatedAt:   "updated_at",
	},
}

// VideoRepository implements repository.VideoRepository using PostgreSQL.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	const q = `
		INSERT INTO videos (` + videoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, q,
		video.ID,
		video.Owner,
		video.Title,
		video.Description,
		video.Duration,
		video.VideoFile,
		video.Thumbnail,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return convertError(err, "create video")
	}
	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	const q = `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	video, err := scanVideo(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, convertError(err, "get video by ID")
	}
	return video, nil
}

// Find runs plan as a single SELECT.
func (r *VideoRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Video, error) {
	q, args, err := videoSelect.build(plan)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, convertError(err, "query videos")
	}
	videos, err := collect(rows, func(rows pgx.Rows) (*model.Video, error) { return scanVideo(rows) })
	if err != nil {
		return nil, convertError(err, "scan videos")
	}
	return videos, nil
}

// Update writes the supplied patch fields if owner owns the video.
// Absent fields are passed as NULL and keep their stored value.
func (r *VideoRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.VideoPatch) (*model.Video, error) {
	const q = `
		UPDATE videos
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    duration = COALESCE($5, duration),
		    thumbnail = COALESCE($6, thumbnail),
		    is_published = COALESCE($7, is_published),
		    updated_at = $8
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + videoColumns

	video, err := scanVideo(r.db.QueryRow(ctx, q,
		id,
		owner,
		patch.Title,
		patch.Description,
		patch.Duration,
		patch.Thumbnail,
		patch.IsPublished,
		time.Now(),
	))
	if err != nil {
		return nil, convertError(err, "update video")
	}
	return video, nil
}

// Delete removes the video if owner owns it and returns the removed row.
func (r *VideoRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Video, error) {
	const q = `DELETE FROM videos WHERE id = $1 AND owner_id = $2 RETURNING ` + videoColumns

	video, err := scanVideo(r.db.QueryRow(ctx, q, id, owner))
	if err != nil {
		return nil, convertError(err, "delete video")
	}
	return video, nil
}

func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID,
		&v.Owner,
		&v.Title,
		&v.Description,
		&v.Duration,
		&v.VideoFile,
		&v.Thumbnail,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
