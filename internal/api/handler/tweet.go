package handler

import (
	"net/http"

	"github.com/hszk-dev/mediahub/internal/usecase"
)

// TweetHandler handles tweet-related HTTP requests.
type TweetHandler struct {
	svc usecase.TweetService
}

func NewTweetHandler(svc usecase.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /v1/tweets
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}

	var req ContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Fail(w, r, err)
		return
	}

	tweet, err := h.svc.CreateTweet(r.Context(), userID, req.Content)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusCreated, toTweetResponse(tweet), "Tweet created successfully")
}

// ListByUser handles GET /v1/tweets/user/{userID}
func (h *TweetHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	tweets, err := h.svc.ListUserTweets(r.Context(), userID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, mapSlice(tweets, toTweetResponse), "Tweets fetched successfully")
}

// Update handles PATCH /v1/tweets/{tweetID}
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	tweetID, err := pathID(r, "tweetID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	var req ContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Fail(w, r, err)
		return
	}

	tweet, err := h.svc.UpdateTweet(r.Context(), userID, tweetID, req.Content)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toTweetResponse(tweet), "Tweet updated successfully")
}

// Delete handles DELETE /v1/tweets/{tweetID}
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	tweetID, err := pathID(r, "tweetID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	tweet, err := h.svc.DeleteTweet(r.Context(), userID, tweetID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toTweetResponse(tweet), "Tweet deleted successfully")
}
