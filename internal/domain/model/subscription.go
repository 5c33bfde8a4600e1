package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge from a subscriber to a channel.
// At most one edge exists per (Subscriber, Channel) pair.
type Subscription struct {
	ID         uuid.UUID
	Subscriber uuid.UUID
	Channel    uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var (
	ErrInvalidSubscriber = errors.New("subscriber cannot be nil")
	ErrInvalidChannel    = errors.New("channel cannot be nil")
	ErrSelfSubscription  = errors.New("users cannot subscribe to their own channel")
)

func NewSubscription(subscriber, channel uuid.UUID) (*Subscription, error) {
	if subscriber == uuid.Nil {
		return nil, ErrInvalidSubscriber
	}
	if channel == uuid.Nil {
		return nil, ErrInvalidChannel
	}

	now := time.Now()
	return &Subscription{
		ID:         uuid.New(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// SubscriberView is the projection of a subscriber returned by a channel's
// subscriber list.
type SubscriberView struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// ChannelView is the projection of a channel returned by a subscriber's
// channel list.
type ChannelView struct {
	ID       uuid.UUID
	Username string
	FullName string
}
