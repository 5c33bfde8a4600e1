package model

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post owned by a user.
type Tweet struct {
	ID        uuid.UUID
	Content   string
	Owner     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTweet(owner uuid.UUID, content string) (*Tweet, error) {
	if owner == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Tweet{
		ID:        uuid.New(),
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (t *Tweet) IsOwnedBy(userID uuid.UUID) bool {
	return t.Owner == userID
}
