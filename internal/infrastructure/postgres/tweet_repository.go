package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const tweetColumns = `id, content, owner_id, created_at, updated_at`

// TweetRepository implements repository.TweetRepository using PostgreSQL.
type TweetRepository struct {
	db DBTX
}

func NewTweetRepository(db DBTX) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(ctx context.Context, t *model.Tweet) error {
	const q = `INSERT INTO tweets (` + tweetColumns + `) VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, q, t.ID, t.Content, t.Owner, t.CreatedAt, t.UpdatedAt); err != nil {
		return convertError(err, "create tweet")
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	const q = `SELECT ` + tweetColumns + ` FROM tweets WHERE id = $1`

	t, err := scanTweet(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, convertError(err, "get tweet by ID")
	}
	return t, nil
}

// ListByOwner returns the tweets of owner, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	const q = `SELECT ` + tweetColumns + ` FROM tweets WHERE owner_id = $1 ORDER BY created_at DESC, id ASC`

	rows, err := r.db.Query(ctx, q, owner)
	if err != nil {
		return nil, convertError(err, "query tweets by owner")
	}
	tweets, err := collect(rows, func(rows pgx.Rows) (*model.Tweet, error) { return scanTweet(rows) })
	if err != nil {
		return nil, convertError(err, "scan tweets")
	}
	return tweets, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Tweet, error) {
	const q = `
		UPDATE tweets SET content = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + tweetColumns

	t, err := scanTweet(r.db.QueryRow(ctx, q, id, owner, content, time.Now()))
	if err != nil {
		return nil, convertError(err, "update tweet")
	}
	return t, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Tweet, error) {
	const q = `DELETE FROM tweets WHERE id = $1 AND owner_id = $2 RETURNING ` + tweetColumns

	t, err := scanTweet(r.db.QueryRow(ctx, q, id, owner))
	if err != nil {
		return nil, convertError(err, "delete tweet")
	}
	return t, nil
}

func scanTweet(row pgx.Row) (*model.Tweet, error) {
	var t model.Tweet
	if err := row.Scan(&t.ID, &t.Content, &t.Owner, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
