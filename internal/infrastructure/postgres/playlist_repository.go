package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const playlistColumns = `id, name, description, owner_id, video_ids, created_at, updated_at`

// PlaylistRepository implements repository.PlaylistRepository using
// PostgreSQL. Videos live in a UUID[] column edited with array_append and
// array_remove.
type PlaylistRepository struct {
	db DBTX
}

func NewPlaylistRepository(db DBTX) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *model.Playlist) error {
	const q = `INSERT INTO playlists (` + playlistColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	videos := p.Videos
	if videos == nil {
		videos = []uuid.UUID{}
	}
	if _, err := r.db.Exec(ctx, q, p.ID, p.Name, p.Description, p.Owner, videos, p.CreatedAt, p.UpdatedAt); err != nil {
		return convertError(err, "create playlist")
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	const q = `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1`

	p, err := scanPlaylist(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, convertError(err, "get playlist by ID")
	}
	return p, nil
}

// ListByOwner returns the playlists of owner, oldest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	const q = `SELECT ` + playlistColumns + ` FROM playlists WHERE owner_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, owner)
	if err != nil {
		return nil, convertError(err, "query playlists by owner")
	}
	playlists, err := collect(rows, func(rows pgx.Rows) (*model.Playlist, error) { return scanPlaylist(rows) })
	if err != nil {
		return nil, convertError(err, "scan playlists")
	}
	return playlists, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error) {
	const q = `
		UPDATE playlists
		SET name = COALESCE($3, name), description = COALESCE($4, description), updated_at = $5
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + playlistColumns

	p, err := scanPlaylist(r.db.QueryRow(ctx, q, id, owner, patch.Name, patch.Description, time.Now()))
	if err != nil {
		return nil, convertError(err, "update playlist")
	}
	return p, nil
}

func (r *PlaylistRepository) PushVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error) {
	const q = `
		UPDATE playlists
		SET video_ids = array_append(video_ids, $3), updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + playlistColumns

	p, err := scanPlaylist(r.db.QueryRow(ctx, q, id, owner, videoID, time.Now()))
	if err != nil {
		return nil, convertError(err, "add video to playlist")
	}
	return p, nil
}

// PullVideo removes every occurrence of videoID.
func (r *PlaylistRepository) PullVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error) {
	const q = `
		UPDATE playlists
		SET video_ids = array_remove(video_ids, $3), updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + playlistColumns

	p, err := scanPlaylist(r.db.QueryRow(ctx, q, id, owner, videoID, time.Now()))
	if err != nil {
		return nil, convertError(err, "remove video from playlist")
	}
	return p, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Playlist, error) {
	const q = `DELETE FROM playlists WHERE id = $1 AND owner_id = $2 RETURNING ` + playlistColumns

	p, err := scanPlaylist(r.db.QueryRow(ctx, q, id, owner))
	if err != nil {
		return nil, convertError(err, "delete playlist")
	}
	return p, nil
}

func scanPlaylist(row pgx.Row) (*model.Playlist, error) {
	var p model.Playlist
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Owner, &p.Videos, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Videos == nil {
		p.Videos = []uuid.UUID{}
	}
	return &p, nil
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
