package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

func TestCommentHandler(t *testing.T) {
	actorID := uuid.New()
	videoID := uuid.New()

	var listed usecase.ListCommentsInput
	svc := &mockCommentService{
		listFn: func(ctx context.Context, input usecase.ListCommentsInput) ([]*model.Comment, error) {
			listed = input
			return []*model.Comment{{ID: uuid.New(), Content: "nice", Video: input.VideoID, Owner: actorID}}, nil
		},
		addFn: func(ctx context.Context, actor, vid uuid.UUID, content string) (*model.Comment, error) {
			return &model.Comment{ID: uuid.New(), Content: content, Video: vid, Owner: actor, CreatedAt: time.Now()}, nil
		},
		updateFn: func(ctx context.Context, actor, commentID uuid.UUID, content string) (*model.Comment, error) {
			return nil, apperr.NotFound("comment not found")
		},
		deleteFn: func(ctx context.Context, actor, commentID uuid.UUID) (*model.Comment, error) {
			return &model.Comment{ID: commentID, Owner: actor}, nil
		},
	}
	router := newTestRouter(Handlers{Comments: NewCommentHandler(svc)}, actorID)

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		wantStatusCode int
	}{
		{"list", http.MethodGet, "/v1/comments/" + videoID.String() + "?page=3&limit=2&sortBy=createdAt&sortType=asc", "", http.StatusOK},
		{"add", http.MethodPost, "/v1/comments/" + videoID.String(), `{"content":"hello"}`, http.StatusCreated},
		{"add without content", http.MethodPost, "/v1/comments/" + videoID.String(), `{}`, http.StatusBadRequest},
		{"add with malformed body", http.MethodPost, "/v1/comments/" + videoID.String(), `{`, http.StatusBadRequest},
		{"update missing comment", http.MethodPatch, "/v1/comments/c/" + uuid.New().String(), `{"content":"x"}`, http.StatusNotFound},
		{"delete", http.MethodDelete, "/v1/comments/c/" + uuid.New().String(), "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}

	want := usecase.ListCommentsInput{VideoID: videoID, Page: "3", Limit: "2", SortField: "createdAt", SortDirection: "asc"}
	if listed != want {
		t.Errorf("list input = %+v, want %+v", listed, want)
	}
}

func TestTweetHandler(t *testing.T) {
	actorID := uuid.New()
	svc := &mockTweetService{
		createFn: func(ctx context.Context, actor uuid.UUID, content string) (*model.Tweet, error) {
			return &model.Tweet{ID: uuid.New(), Content: content, Owner: actor}, nil
		},
		listFn: func(ctx context.Context, userID uuid.UUID) ([]*model.Tweet, error) {
			return []*model.Tweet{}, nil
		},
		updateFn: func(ctx context.Context, actor, tweetID uuid.UUID, content string) (*model.Tweet, error) {
			return nil, apperr.Forbidden("only the owner can modify this tweet")
		},
		deleteFn: func(ctx context.Context, actor, tweetID uuid.UUID) (*model.Tweet, error) {
			return &model.Tweet{ID: tweetID, Owner: actor}, nil
		},
	}
	router := newTestRouter(Handlers{Tweets: NewTweetHandler(svc)}, actorID)

	t.Run("create", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tweets", strings.NewReader(`{"content":"first"}`)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
		}
		var env struct {
			Data TweetResponse `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if env.Data.Content != "first" || env.Data.Owner != actorID.String() {
			t.Errorf("data = %+v", env.Data)
		}
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tweets/user/"+uuid.New().String(), nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"data":[]`) {
			t.Errorf("body = %s, want an empty data array", rec.Body.String())
		}
	})

	t.Run("update by non-owner", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/v1/tweets/"+uuid.New().String(), strings.NewReader(`{"content":"x"}`)))
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/tweets/"+uuid.New().String(), nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestPlaylistHandler(t *testing.T) {
	actorID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	var gotPatch model.PlaylistPatch
	var added, removed [2]uuid.UUID
	svc := &mockPlaylistService{
		createFn: func(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error) {
			return &model.Playlist{ID: playlistID, Name: name, Description: description, Owner: actor}, nil
		},
		getFn: func(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
			return &model.Playlist{ID: id, Videos: []uuid.UUID{videoID}}, nil
		},
		listFn: func(ctx context.Context, userID uuid.UUID) ([]*model.Playlist, error) {
			return nil, apperr.NotFound("no playlists found")
		},
		updateFn: func(ctx context.Context, actor, id uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error) {
			gotPatch = patch
			return &model.Playlist{ID: id, Owner: actor}, nil
		},
		deleteFn: func(ctx context.Context, actor, id uuid.UUID) (*model.Playlist, error) {
			return &model.Playlist{ID: id, Owner: actor}, nil
		},
		addVideoFn: func(ctx context.Context, actor, pid, vid uuid.UUID) (*model.Playlist, error) {
			added = [2]uuid.UUID{pid, vid}
			return &model.Playlist{ID: pid, Videos: []uuid.UUID{vid}}, nil
		},
		removeVideoFn: func(ctx context.Context, actor, pid, vid uuid.UUID) (*model.Playlist, error) {
			removed = [2]uuid.UUID{pid, vid}
			return &model.Playlist{ID: pid}, nil
		},
	}
	router := newTestRouter(Handlers{Playlists: NewPlaylistHandler(svc)}, actorID)

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		wantStatusCode int
	}{
		{"create", http.MethodPost, "/v1/playlists", `{"name":"mix","description":"d"}`, http.StatusCreated},
		{"create without name", http.MethodPost, "/v1/playlists", `{"description":"d"}`, http.StatusBadRequest},
		{"get", http.MethodGet, "/v1/playlists/" + playlistID.String(), "", http.StatusOK},
		{"list empty", http.MethodGet, "/v1/playlists/user/" + actorID.String(), "", http.StatusNotFound},
		{"update name only", http.MethodPatch, "/v1/playlists/" + playlistID.String(), `{"name":"renamed"}`, http.StatusOK},
		{"delete", http.MethodDelete, "/v1/playlists/" + playlistID.String(), "", http.StatusOK},
		{"add video", http.MethodPatch, "/v1/playlists/add/" + videoID.String() + "/" + playlistID.String(), "", http.StatusOK},
		{"remove video", http.MethodPatch, "/v1/playlists/remove/" + videoID.String() + "/" + playlistID.String(), "", http.StatusOK},
		{"add invalid video id", http.MethodPatch, "/v1/playlists/add/abc/" + playlistID.String(), "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))
			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}

	if gotPatch.Name == nil || *gotPatch.Name != "renamed" || gotPatch.Description != nil {
		t.Errorf("patch = %+v", gotPatch)
	}
	if added != [2]uuid.UUID{playlistID, videoID} {
		t.Errorf("AddVideo args = %v", added)
	}
	if removed != [2]uuid.UUID{playlistID, videoID} {
		t.Errorf("RemoveVideo args = %v", removed)
	}
}
