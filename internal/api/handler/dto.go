package handler

import (
	"time"

	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// Request types

type ContentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=5000"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name" validate:"omitnil,max=255"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
}

type PublishVideoForm struct {
	Title       string  `form:"title" validate:"required,max=255"`
	Description string  `form:"description" validate:"required,max=5000"`
	Duration    float64 `form:"duration" validate:"gt=0"`
}

// Response types

const timeFormat = time.RFC3339

type VideoResponse struct {
	ID          string  `json:"id"`
	Owner       string  `json:"owner"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	IsPublished bool    `json:"isPublished"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID.String(),
		Owner:       v.Owner.String(),
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt.Format(timeFormat),
		UpdatedAt:   v.UpdatedAt.Format(timeFormat),
	}
}

type CommentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Video     string `json:"video"`
	Owner     string `json:"owner"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		Content:   c.Content,
		Video:     c.Video.String(),
		Owner:     c.Owner.String(),
		CreatedAt: c.CreatedAt.Format(timeFormat),
		UpdatedAt: c.UpdatedAt.Format(timeFormat),
	}
}

type TweetResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Owner     string `json:"owner"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toTweetResponse(t *model.Tweet) TweetResponse {
	return TweetResponse{
		ID:        t.ID.String(),
		Content:   t.Content,
		Owner:     t.Owner.String(),
		CreatedAt: t.CreatedAt.Format(timeFormat),
		UpdatedAt: t.UpdatedAt.Format(timeFormat),
	}
}

type PlaylistResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	Videos      []string `json:"videos"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func toPlaylistResponse(p *model.Playlist) PlaylistResponse {
	videos := make([]string, len(p.Videos))
	for i, id := range p.Videos {
		videos[i] = id.String()
	}
	return PlaylistResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Owner:       p.Owner.String(),
		Videos:      videos,
		CreatedAt:   p.CreatedAt.Format(timeFormat),
		UpdatedAt:   p.UpdatedAt.Format(timeFormat),
	}
}

type SubscriptionResponse struct {
	ID         string `json:"id"`
	Subscriber string `json:"subscriber"`
	Channel    string `json:"channel"`
	CreatedAt  string `json:"createdAt"`
}

func toSubscriptionResponse(s *model.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:         s.ID.String(),
		Subscriber: s.Subscriber.String(),
		Channel:    s.Channel.String(),
		CreatedAt:  s.CreatedAt.Format(timeFormat),
	}
}

type SubscriberResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ChannelResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type SubscriberCountResponse struct {
	Channel     string `json:"channel"`
	Subscribers int64  `json:"subscribers"`
}

// mapSlice converts every element of in with fn.
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
