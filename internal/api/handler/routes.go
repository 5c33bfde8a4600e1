package handler

import (
	"github.com/go-chi/chi/v5"
)

// Handlers groups the /v1 resource handlers.
type Handlers struct {
	Videos        *VideoHandler
	Comments      *CommentHandler
	Tweets        *TweetHandler
	Playlists     *PlaylistHandler
	Subscriptions *SubscriptionHandler
}

// Register mounts every /v1 resource route on r. Authentication is applied
// by the caller.
func (h Handlers) Register(r chi.Router) {
	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.Videos.List)
		r.Post("/", h.Videos.Publish)
		r.Get("/{videoID}", h.Videos.Get)
		r.Patch("/{videoID}", h.Videos.Update)
		r.Delete("/{videoID}", h.Videos.Delete)
		r.Patch("/toggle/publish/{videoID}", h.Videos.TogglePublish)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/{videoID}", h.Comments.List)
		r.Post("/{videoID}", h.Comments.Add)
		r.Patch("/c/{commentID}", h.Comments.Update)
		r.Delete("/c/{commentID}", h.Comments.Delete)
	})

	r.Route("/tweets", func(r chi.Router) {
		r.Post("/", h.Tweets.Create)
		r.Get("/user/{userID}", h.Tweets.ListByUser)
		r.Patch("/{tweetID}", h.Tweets.Update)
		r.Delete("/{tweetID}", h.Tweets.Delete)
	})

	r.Route("/playlists", func(r chi.Router) {
		r.Post("/", h.Playlists.Create)
		r.Get("/{playlistID}", h.Playlists.Get)
		r.Patch("/{playlistID}", h.Playlists.Update)
		r.Delete("/{playlistID}", h.Playlists.Delete)
		r.Patch("/add/{videoID}/{playlistID}", h.Playlists.AddVideo)
		r.Patch("/remove/{videoID}/{playlistID}", h.Playlists.RemoveVideo)
		r.Get("/user/{userID}", h.Playlists.ListByUser)
	})

	r.Route("/subscriptions", func(r chi.Router) {
		r.Post("/c/{channelID}", h.Subscriptions.Toggle)
		r.Get("/c/{channelID}", h.Subscriptions.Subscribers)
		r.Get("/c/{channelID}/count", h.Subscriptions.Count)
		r.Get("/u/{subscriberID}", h.Subscriptions.Channels)
	})
}
