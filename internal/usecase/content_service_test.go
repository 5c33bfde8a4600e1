package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentFixture struct {
	store       *memory.Store
	videoRepo   *memory.VideoRepository
	commentRepo *memory.CommentRepository
	videos    VideoService
	comments  CommentService
	tweets    TweetService
	playlists PlaylistService
}

func newContentFixture() *contentFixture {
	store := memory.NewStore()
	videoRepo := memory.NewVideoRepository(store)
	commentRepo := memory.NewCommentRepository(store)
	return &contentFixture{
		store:       store,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		videos:      NewVideoService(videoRepo, &mockAssetStore{}, nil, DefaultVideoServiceConfig()),
		comments:    NewCommentService(commentRepo, videoRepo, DefaultCommentServiceConfig()),
		tweets:      NewTweetService(memory.NewTweetRepository(store)),
		playlists:   NewPlaylistService(memory.NewPlaylistRepository(store), DefaultPlaylistServiceConfig()),
	}
}

// seedVideo stores a video directly, bypassing uploads.
func (f *contentFixture) seedVideo(t *testing.T, owner uuid.UUID, title string, createdAt time.Time) *model.Video {
	t.Helper()
	v, err := model.NewVideo(owner, title, "description of "+title, 10, "http://cdn/v.mp4", "http://cdn/t.jpg")
	require.NoError(t, err)
	v.CreatedAt = createdAt
	require.NoError(t, f.videoRepo.Create(context.Background(), v))
	return v
}

func titles(videos []*model.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.Title)
	}
	return out
}

func TestVideoFeed_CatScenario(t *testing.T) {
	f := newContentFixture()
	owner := uuid.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 12; i++ {
		f.seedVideo(t, owner, fmt.Sprintf("cat %02d", i), base.Add(time.Duration(i)*time.Minute))
	}
	f.seedVideo(t, owner, "dog 01", base)

	got, err := f.videos.ListVideos(context.Background(), ListVideosInput{
		Page:          "2",
		Limit:         "5",
		Query:         "CAT",
		SortField:     "title",
		SortDirection: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat 07", "cat 06", "cat 05", "cat 04", "cat 03"}, titles(got))
}

func TestVideoFeed_OwnerAndDefaults(t *testing.T) {
	f := newContentFixture()
	alice, bob := uuid.New(), uuid.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.seedVideo(t, alice, "a1", base)
	f.seedVideo(t, bob, "b1", base.Add(time.Minute))
	f.seedVideo(t, alice, "a2", base.Add(2*time.Minute))

	got, err := f.videos.ListVideos(context.Background(), ListVideosInput{Owner: alice, SortField: "nope"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, titles(got), "unknown sort falls back to createdAt ascending")

	got, err = f.videos.ListVideos(context.Background(), ListVideosInput{Page: "9"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVideoService_PartialUpdateAgainstStore(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()
	video := f.seedVideo(t, owner, "Original", time.Now())

	title := "Renamed"
	updated, err := f.videos.UpdateVideo(ctx, UpdateVideoInput{Actor: owner, VideoID: video.ID, Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, video.Description, updated.Description)
	assert.Equal(t, video.Duration, updated.Duration)
	assert.Equal(t, video.Thumbnail, updated.Thumbnail)
	assert.Equal(t, video.VideoFile, updated.VideoFile)

	stored, err := f.videos.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
}

func TestVideoService_DeleteThenDeleteAgain(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()
	video := f.seedVideo(t, owner, "Doomed", time.Now())

	_, err := f.videos.DeleteVideo(ctx, uuid.New(), video.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden), "got %v", err)

	deleted, err := f.videos.DeleteVideo(ctx, owner, video.ID)
	require.NoError(t, err)
	assert.Equal(t, video.ID, deleted.ID)

	_, err = f.videos.DeleteVideo(ctx, owner, video.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "got %v", err)

	_, err = f.videos.GetVideo(ctx, video.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestVideoService_PublishAgainstStore(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()

	video, err := f.videos.PublishVideo(ctx, validPublishInput(owner))
	require.NoError(t, err)

	toggled, err := f.videos.TogglePublish(ctx, owner, video.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)

	published, err := f.videos.ListVideos(ctx, ListVideosInput{Owner: owner})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.True(t, published[0].IsPublished)
}

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()
	video := f.seedVideo(t, owner, "Commented", time.Now())
	other := f.seedVideo(t, owner, "Other", time.Now())

	_, err := f.comments.AddComment(ctx, owner, uuid.New(), "hello")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "comment on a missing video, got %v", err)

	_, err = f.comments.AddComment(ctx, owner, video.ID, "   ")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	var created []*model.Comment
	for i := range 3 {
		c, err := f.comments.AddComment(ctx, owner, video.ID, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
		created = append(created, c)
	}
	_, err = f.comments.AddComment(ctx, owner, other.ID, "elsewhere")
	require.NoError(t, err)

	page, err := f.comments.ListComments(ctx, ListCommentsInput{VideoID: video.ID, Page: "1", Limit: "2"})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	for _, c := range page {
		assert.Equal(t, video.ID, c.Video)
	}

	stranger := uuid.New()
	_, err = f.comments.UpdateComment(ctx, stranger, created[0].ID, "hijack")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	updated, err := f.comments.UpdateComment(ctx, owner, created[0].ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, video.ID, updated.Video, "content-only update keeps the video")
	assert.Equal(t, owner, updated.Owner, "content-only update keeps the owner")

	stored, err := f.commentRepo.GetByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", stored.Content)
	assert.Equal(t, created[0].Video, stored.Video)
	assert.Equal(t, created[0].Owner, stored.Owner)
	assert.Equal(t, created[0].CreatedAt, stored.CreatedAt)

	_, err = f.comments.DeleteComment(ctx, stranger, created[1].ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	_, err = f.comments.DeleteComment(ctx, owner, created[1].ID)
	require.NoError(t, err)
	_, err = f.comments.DeleteComment(ctx, owner, created[1].ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTweetService(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()

	empty, err := f.tweets.ListUserTweets(ctx, owner)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := f.tweets.CreateTweet(ctx, owner, "first")
	require.NoError(t, err)
	_, err = f.tweets.CreateTweet(ctx, owner, "second")
	require.NoError(t, err)

	_, err = f.tweets.CreateTweet(ctx, owner, "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	list, err := f.tweets.ListUserTweets(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)

	_, err = f.tweets.UpdateTweet(ctx, owner, first.ID, " ")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	updated, err := f.tweets.UpdateTweet(ctx, owner, first.ID, "first, edited")
	require.NoError(t, err)
	assert.Equal(t, "first, edited", updated.Content)

	_, err = f.tweets.UpdateTweet(ctx, owner, uuid.New(), "nothing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = f.tweets.DeleteTweet(ctx, uuid.New(), first.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	deleted, err := f.tweets.DeleteTweet(ctx, owner, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, deleted.ID)

	_, err = f.tweets.DeleteTweet(ctx, owner, first.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "deleting twice, got %v", err)
	_, err = f.tweets.DeleteTweet(ctx, owner, uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "deleting an unknown id, got %v", err)
}

func TestPlaylistService_Membership(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()

	playlist, err := f.playlists.CreatePlaylist(ctx, owner, "Favourites", "best of")
	require.NoError(t, err)

	a, b := uuid.New(), uuid.New()
	_, err = f.playlists.AddVideo(ctx, owner, playlist.ID, a)
	require.NoError(t, err)
	before, err := f.playlists.AddVideo(ctx, owner, playlist.ID, b)
	require.NoError(t, err)

	added := uuid.New()
	_, err = f.playlists.AddVideo(ctx, owner, playlist.ID, added)
	require.NoError(t, err)
	after, err := f.playlists.RemoveVideo(ctx, owner, playlist.ID, added)
	require.NoError(t, err)
	assert.Equal(t, before.Videos, after.Videos, "add then remove of a new id restores the sequence")

	_, err = f.playlists.AddVideo(ctx, owner, playlist.ID, a)
	require.NoError(t, err)
	stripped, err := f.playlists.RemoveVideo(ctx, owner, playlist.ID, a)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b}, stripped.Videos, "every occurrence is removed")

	got, err := f.playlists.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b}, got.Videos)

	_, err = f.playlists.AddVideo(ctx, uuid.New(), playlist.ID, a)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	_, err = f.playlists.AddVideo(ctx, owner, uuid.New(), a)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPlaylistService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newContentFixture()
	owner := uuid.New()

	_, err := f.playlists.ListUserPlaylists(ctx, owner)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "no playlists yet")

	playlist, err := f.playlists.CreatePlaylist(ctx, owner, "Watch later", "queue")
	require.NoError(t, err)

	_, err = f.playlists.CreatePlaylist(ctx, owner, "", "queue")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	name := "Someday"
	updated, err := f.playlists.UpdatePlaylist(ctx, owner, playlist.ID, model.PlaylistPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Someday", updated.Name)
	assert.Equal(t, "queue", updated.Description)

	_, err = f.playlists.UpdatePlaylist(ctx, owner, playlist.ID, model.PlaylistPatch{})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	list, err := f.playlists.ListUserPlaylists(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.playlists.DeletePlaylist(ctx, uuid.New(), playlist.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	_, err = f.playlists.DeletePlaylist(ctx, owner, playlist.ID)
	require.NoError(t, err)

	_, err = f.playlists.GetPlaylist(ctx, playlist.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = f.playlists.DeletePlaylist(ctx, owner, playlist.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "deleting twice, got %v", err)
	_, err = f.playlists.DeletePlaylist(ctx, owner, uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "deleting an unknown id, got %v", err)
}

func TestPlaylistService_EmptyListAsSuccess(t *testing.T) {
	svc := NewPlaylistService(memory.NewPlaylistRepository(memory.NewStore()), PlaylistServiceConfig{EmptyAsNotFound: false})

	list, err := svc.ListUserPlaylists(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
