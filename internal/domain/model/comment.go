package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is a text comment left on a video.
type Comment struct {
	ID        uuid.UUID
	Content   string
	Video     uuid.UUID
	Owner     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrInvalidVideoID = errors.New("video ID cannot be nil")
)

// NewComment creates a comment on videoID authored by owner.
func NewComment(owner, videoID uuid.UUID, content string) (*Comment, error) {
	if owner == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Comment{
		ID:        uuid.New(),
		Content:   content,
		Video:     videoID,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsOwnedBy reports whether userID wrote the comment.
func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.Owner == userID
}

// ValidateContent rejects blank text bodies for comments and tweets.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}
