package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

// PlaylistHandler handles playlist-related HTTP requests.
type PlaylistHandler struct {
	svc usecase.PlaylistService
}

func NewPlaylistHandler(svc usecase.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /v1/playlists
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}

	var req CreatePlaylistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Fail(w, r, err)
		return
	}

	playlist, err := h.svc.CreatePlaylist(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusCreated, toPlaylistResponse(playlist), "Playlist created successfully")
}

// Get handles GET /v1/playlists/{playlistID}
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, err := pathID(r, "playlistID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	playlist, err := h.svc.GetPlaylist(r.Context(), playlistID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toPlaylistResponse(playlist), "Playlist fetched successfully")
}

// ListByUser handles GET /v1/playlists/user/{userID}
func (h *PlaylistHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	playlists, err := h.svc.ListUserPlaylists(r.Context(), userID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, mapSlice(playlists, toPlaylistResponse), "Playlists fetched successfully")
}

// Update handles PATCH /v1/playlists/{playlistID}
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	playlistID, err := pathID(r, "playlistID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	var req UpdatePlaylistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Fail(w, r, err)
		return
	}

	playlist, err := h.svc.UpdatePlaylist(r.Context(), userID, playlistID, model.PlaylistPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toPlaylistResponse(playlist), "Playlist updated successfully")
}

// Delete handles DELETE /v1/playlists/{playlistID}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	playlistID, err := pathID(r, "playlistID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	playlist, err := h.svc.DeletePlaylist(r.Context(), userID, playlistID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toPlaylistResponse(playlist), "Playlist deleted successfully")
}

// AddVideo handles PATCH /v1/playlists/add/{videoID}/{playlistID}
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.svc.AddVideo, "Video added to playlist")
}

// RemoveVideo handles PATCH /v1/playlists/remove/{videoID}/{playlistID}
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.svc.RemoveVideo, "Video removed from playlist")
}

type membershipOp func(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error)

func (h *PlaylistHandler) membership(w http.ResponseWriter, r *http.Request, op membershipOp, message string) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}
	playlistID, err := pathID(r, "playlistID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	playlist, err := op(r.Context(), userID, playlistID, videoID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toPlaylistResponse(playlist), message)
}
