package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const entityPlaylist = "playlist"

// PlaylistService defines the playlist operations.
type PlaylistService interface {
	CreatePlaylist(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error)

	// GetPlaylist returns the playlist with its video ids as stored.
	GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error)

	ListUserPlaylists(ctx context.Context, userID uuid.UUID) ([]*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, actor, playlistID uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) (*model.Playlist, error)

	// AddVideo appends videoID even if it is already present. The video is
	// not required to exist.
	AddVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error)

	// RemoveVideo drops every occurrence of videoID.
	RemoveVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error)
}

// PlaylistServiceConfig holds configuration for PlaylistService.
type PlaylistServiceConfig struct {
	// EmptyAsNotFound reports a user without playlists as not found.
	EmptyAsNotFound bool
}

// DefaultPlaylistServiceConfig returns the default configuration.
func DefaultPlaylistServiceConfig() PlaylistServiceConfig {
	return PlaylistServiceConfig{EmptyAsNotFound: true}
}

type playlistService struct {
	playlists repository.PlaylistRepository

	emptyAsNotFound bool
}

// NewPlaylistService creates a new PlaylistService instance.
func NewPlaylistService(playlists repository.PlaylistRepository, cfg PlaylistServiceConfig) PlaylistService {
	return &playlistService{
		playlists:       playlists,
		emptyAsNotFound: cfg.EmptyAsNotFound,
	}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error) {
	playlist, err := model.NewPlaylist(actor, name, description)
	if err != nil {
		return nil, invalid(err)
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, translate(err, entityPlaylist)
	}
	return playlist, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, entityPlaylist)
	}
	return playlist, nil
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, userID uuid.UUID) ([]*model.Playlist, error) {
	playlists, err := s.playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if len(playlists) == 0 {
		if s.emptyAsNotFound {
			return nil, apperr.NotFound("user does not have any playlists")
		}
		return []*model.Playlist{}, nil
	}
	return playlists, nil
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, actor, playlistID uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error) {
	if _, err := loadOwned(ctx, s.playlists.GetByID, playlistID, actor, entityPlaylist); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.playlists.Update(ctx, playlistID, actor, patch)
	if err != nil {
		return nil, translate(err, entityPlaylist)
	}
	return updated, nil
}

func (s *playlistService) DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) (*model.Playlist, error) {
	deleted, err := s.playlists.Delete(ctx, playlistID, actor)
	if err != nil {
		if !isNotFound(err) {
			return nil, apperr.Store(err)
		}
		return nil, explainMiss(ctx, s.playlists.GetByID, playlistID, actor, entityPlaylist)
	}
	return deleted, nil
}

func (s *playlistService) AddVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error) {
	return s.changeMembership(ctx, actor, playlistID, videoID, s.playlists.PushVideo)
}

func (s *playlistService) RemoveVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error) {
	return s.changeMembership(ctx, actor, playlistID, videoID, s.playlists.PullVideo)
}

type membershipFunc func(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error)

func (s *playlistService) changeMembership(ctx context.Context, actor, playlistID, videoID uuid.UUID, apply membershipFunc) (*model.Playlist, error) {
	if videoID == uuid.Nil {
		return nil, invalid(model.ErrInvalidVideoID)
	}

	playlist, err := apply(ctx, playlistID, actor, videoID)
	if err != nil {
		if !isNotFound(err) {
			return nil, apperr.Store(err)
		}
		return nil, explainMiss(ctx, s.playlists.GetByID, playlistID, actor, entityPlaylist)
	}
	return playlist, nil
}
