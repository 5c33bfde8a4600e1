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

const commentColumns = `id, content, video_id, owner_id, created_at, updated_at`

var commentSelect = selectBuilder{
	table: "comments",
	list:  commentColumns,
	columns: map[string]string{
		query.FieldID:        "id",
		query.FieldOwner:     "owner_id",
		query.FieldVideo:     "video_id",
		query.FieldContent:   "content",
		query.FieldCreatedAt: "created_at",
		query.FieldUpdatedAt: "updated_at",
	},
}

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	const q = `INSERT INTO comments (` + commentColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.Exec(ctx, q, c.ID, c.Content, c.Video, c.Owner, c.CreatedAt, c.UpdatedAt); err != nil {
		return convertError(err, "create comment")
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	const q = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	c, err := scanComment(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, convertError(err, "get comment by ID")
	}
	return c, nil
}

func (r *CommentRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Comment, error) {
	q, args, err := commentSelect.build(plan)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, convertError(err, "query comments")
	}
	comments, err := collect(rows, func(rows pgx.Rows) (*model.Comment, error) { return scanComment(rows) })
	if err != nil {
		return nil, convertError(err, "scan comments")
	}
	return comments, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Comment, error) {
	const q = `
		UPDATE comments SET content = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRow(ctx, q, id, owner, content, time.Now()))
	if err != nil {
		return nil, convertError(err, "update comment")
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Comment, error) {
	const q = `DELETE FROM comments WHERE id = $1 AND owner_id = $2 RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRow(ctx, q, id, owner))
	if err != nil {
		return nil, convertError(err, "delete comment")
	}
	return c, nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.Content, &c.Video, &c.Owner, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
