package handler

import (
	"net/http"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

// SubscriptionHandler handles subscription-related HTTP requests.
type SubscriptionHandler struct {
	svc usecase.SubscriptionService
}

func NewSubscriptionHandler(svc usecase.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /v1/subscriptions/c/{channelID}
// Answers 201 when the subscription was created and 200 when it was removed.
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	channelID, err := pathID(r, "channelID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	res, err := h.svc.Toggle(r.Context(), userID, channelID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	if res.Subscribed {
		Success(w, http.StatusCreated, toSubscriptionResponse(res.Subscription), "Subscribed to the channel successfully")
		return
	}
	Success(w, http.StatusOK, toSubscriptionResponse(res.Subscription), "Unsubscribed from the channel successfully")
}

// Subscribers handles GET /v1/subscriptions/c/{channelID}
func (h *SubscriptionHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	views, err := h.svc.ChannelSubscribers(r.Context(), channelID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, mapSlice(views, func(v model.SubscriberView) SubscriberResponse {
		return SubscriberResponse{ID: v.ID.String(), Username: v.Username, Email: v.Email}
	}), "Fetched all subscribers")
}

// Count handles GET /v1/subscriptions/c/{channelID}/count
func (h *SubscriptionHandler) Count(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	n, err := h.svc.SubscriberCount(r.Context(), channelID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, SubscriberCountResponse{Channel: channelID.String(), Subscribers: n}, "Fetched subscriber count")
}

// Channels handles GET /v1/subscriptions/u/{subscriberID}
func (h *SubscriptionHandler) Channels(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := pathID(r, "subscriberID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	views, err := h.svc.SubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, mapSlice(views, func(v model.ChannelView) ChannelResponse {
		return ChannelResponse{ID: v.ID.String(), Username: v.Username, FullName: v.FullName}
	}), "Fetched all subscribed channels")
}
