package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// PlaylistRepository implements repository.PlaylistRepository in memory.
// Video slices are cloned on the way in and out so callers never share
// backing arrays with the store.
type PlaylistRepository struct {
	s *Store
}

func NewPlaylistRepository(s *Store) *PlaylistRepository {
	return &PlaylistRepository{s: s}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.playlists.insert(playlist.ID, clonePlaylist(*playlist)) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.playlists.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	p = clonePlaylist(p)
	return &p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Playlist, 0)
	for _, p := range r.s.playlists.ordered() {
		if p.Owner == owner {
			p = clonePlaylist(p)
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error) {
	return r.mutate(id, owner, func(p *model.Playlist) { p.Apply(patch) })
}

func (r *PlaylistRepository) PushVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error) {
	return r.mutate(id, owner, func(p *model.Playlist) { p.AddVideo(videoID) })
}

func (r *PlaylistRepository) PullVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error) {
	return r.mutate(id, owner, func(p *model.Playlist) { p.RemoveVideo(videoID) })
}

func (r *PlaylistRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Playlist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.playlists.get(id)
	if !ok || p.Owner != owner {
		return nil, repository.ErrNotFound
	}
	r.s.playlists.remove(id)
	return &p, nil
}

func (r *PlaylistRepository) mutate(id, owner uuid.UUID, fn func(p *model.Playlist)) (*model.Playlist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.playlists.get(id)
	if !ok || p.Owner != owner {
		return nil, repository.ErrNotFound
	}
	p = clonePlaylist(p)
	fn(&p)
	r.s.playlists.put(id, p)

	out := clonePlaylist(p)
	return &out, nil
}

func clonePlaylist(p model.Playlist) model.Playlist {
	p.Videos = slices.Clone(p.Videos)
	if p.Videos == nil {
		p.Videos = []uuid.UUID{}
	}
	return p
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
