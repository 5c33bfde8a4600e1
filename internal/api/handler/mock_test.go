package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/api/middleware"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

type mockVideoService struct {
	publishVideoFn  func(ctx context.Context, input usecase.PublishVideoInput) (*model.Video, error)
	listVideosFn    func(ctx context.Context, input usecase.ListVideosInput) ([]*model.Video, error)
	getVideoFn      func(ctx context.Context, videoID uuid.UUID) (*model.Video, error)
	updateVideoFn   func(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error)
	deleteVideoFn   func(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error)
	togglePublishFn func(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error)
}

func (m *mockVideoService) PublishVideo(ctx context.Context, input usecase.PublishVideoInput) (*model.Video, error) {
	return m.publishVideoFn(ctx, input)
}

func (m *mockVideoService) ListVideos(ctx context.Context, input usecase.ListVideosInput) ([]*model.Video, error) {
	return m.listVideosFn(ctx, input)
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	return m.getVideoFn(ctx, videoID)
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error) {
	return m.updateVideoFn(ctx, input)
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	return m.deleteVideoFn(ctx, actor, videoID)
}

func (m *mockVideoService) TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	return m.togglePublishFn(ctx, actor, videoID)
}

type mockCommentService struct {
	listFn   func(ctx context.Context, input usecase.ListCommentsInput) ([]*model.Comment, error)
	addFn    func(ctx context.Context, actor, videoID uuid.UUID, content string) (*model.Comment, error)
	updateFn func(ctx context.Context, actor, commentID uuid.UUID, content string) (*model.Comment, error)
	deleteFn func(ctx context.Context, actor, commentID uuid.UUID) (*model.Comment, error)
}

func (m *mockCommentService) ListComments(ctx context.Context, input usecase.ListCommentsInput) ([]*model.Comment, error) {
	return m.listFn(ctx, input)
}

func (m *mockCommentService) AddComment(ctx context.Context, actor, videoID uuid.UUID, content string) (*model.Comment, error) {
	return m.addFn(ctx, actor, videoID, content)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, actor, commentID uuid.UUID, content string) (*model.Comment, error) {
	return m.updateFn(ctx, actor, commentID, content)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, actor, commentID uuid.UUID) (*model.Comment, error) {
	return m.deleteFn(ctx, actor, commentID)
}

type mockTweetService struct {
	createFn func(ctx context.Context, actor uuid.UUID, content string) (*model.Tweet, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]*model.Tweet, error)
	updateFn func(ctx context.Context, actor, tweetID uuid.UUID, content string) (*model.Tweet, error)
	deleteFn func(ctx context.Context, actor, tweetID uuid.UUID) (*model.Tweet, error)
}

func (m *mockTweetService) CreateTweet(ctx context.Context, actor uuid.UUID, content string) (*model.Tweet, error) {
	return m.createFn(ctx, actor, content)
}

func (m *mockTweetService) ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*model.Tweet, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTweetService) UpdateTweet(ctx context.Context, actor, tweetID uuid.UUID, content string) (*model.Tweet, error) {
	return m.updateFn(ctx, actor, tweetID, content)
}

func (m *mockTweetService) DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) (*model.Tweet, error) {
	return m.deleteFn(ctx, actor, tweetID)
}

type mockPlaylistService struct {
	createFn      func(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error)
	getFn         func(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error)
	listFn        func(ctx context.Context, userID uuid.UUID) ([]*model.Playlist, error)
	updateFn      func(ctx context.Context, actor, playlistID uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error)
	deleteFn      func(ctx context.Context, actor, playlistID uuid.UUID) (*model.Playlist, error)
	addVideoFn    func(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error)
	removeVideoFn func(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error)
}

func (m *mockPlaylistService) CreatePlaylist(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error) {
	return m.createFn(ctx, actor, name, description)
}

func (m *mockPlaylistService) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	return m.getFn(ctx, playlistID)
}

func (m *mockPlaylistService) ListUserPlaylists(ctx context.Context, userID uuid.UUID) ([]*model.Playlist, error) {
	return m.listFn(ctx, userID)
}

func (m *mockPlaylistService) UpdatePlaylist(ctx context.Context, actor, playlistID uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error) {
	return m.updateFn(ctx, actor, playlistID, patch)
}

func (m *mockPlaylistService) DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) (*model.Playlist, error) {
	return m.deleteFn(ctx, actor, playlistID)
}

func (m *mockPlaylistService) AddVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error) {
	return m.addVideoFn(ctx, actor, playlistID, videoID)
}

func (m *mockPlaylistService) RemoveVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*model.Playlist, error) {
	return m.removeVideoFn(ctx, actor, playlistID, videoID)
}

type mockSubscriptionService struct {
	toggleFn      func(ctx context.Context, actor, channelID uuid.UUID) (*usecase.ToggleResult, error)
	subscribersFn func(ctx context.Context, channelID uuid.UUID) ([]model.SubscriberView, error)
	channelsFn    func(ctx context.Context, subscriberID uuid.UUID) ([]model.ChannelView, error)
	countFn       func(ctx context.Context, channelID uuid.UUID) (int64, error)
}

func (m *mockSubscriptionService) Toggle(ctx context.Context, actor, channelID uuid.UUID) (*usecase.ToggleResult, error) {
	return m.toggleFn(ctx, actor, channelID)
}

func (m *mockSubscriptionService) ChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]model.SubscriberView, error) {
	return m.subscribersFn(ctx, channelID)
}

func (m *mockSubscriptionService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.ChannelView, error) {
	return m.channelsFn(ctx, subscriberID)
}

func (m *mockSubscriptionService) SubscriberCount(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return m.countFn(ctx, channelID)
}

// newTestRouter mounts h under /v1 with actor as the authenticated user.
// uuid.Nil leaves the request unauthenticated.
func newTestRouter(h Handlers, actor uuid.UUID) http.Handler {
	if h.Videos == nil {
		h.Videos = NewVideoHandler(&mockVideoService{})
	}
	if h.Comments == nil {
		h.Comments = NewCommentHandler(&mockCommentService{})
	}
	if h.Tweets == nil {
		h.Tweets = NewTweetHandler(&mockTweetService{})
	}
	if h.Playlists == nil {
		h.Playlists = NewPlaylistHandler(&mockPlaylistService{})
	}
	if h.Subscriptions == nil {
		h.Subscriptions = NewSubscriptionHandler(&mockSubscriptionService{})
	}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if actor != uuid.Nil {
					req = req.WithContext(middleware.WithActor(req.Context(), actor))
				}
				next.ServeHTTP(w, req)
			})
		})
		h.Register(r)
	})
	return r
}
