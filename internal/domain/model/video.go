package model

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Video represents an uploaded video owned by a user.
type Video struct {
	ID          uuid.UUID
	Owner       uuid.UUID
	Title       string
	Description string
	Duration    float64
	VideoFile   string
	Thumbnail   string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidDuration  = errors.New("duration must be a positive number")
	ErrInvalidOwner     = errors.New("owner cannot be nil")
	ErrTitleTooLong     = errors.New("title exceeds maximum length of 255 characters")
	ErrMissingVideoFile = errors.New("video file is required")
	ErrMissingThumbnail = errors.New("thumbnail is required")
	ErrEmptyPatch       = errors.New("at least one field must be supplied")
)

const maxTitleLength = 255

// NewVideo creates an unpublished Video after both assets have been stored.
func NewVideo(owner uuid.UUID, title, description string, duration float64, videoFile, thumbnail string) (*Video, error) {
	if owner == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if !ValidDuration(duration) {
		return nil, ErrInvalidDuration
	}
	if videoFile == "" {
		return nil, ErrMissingVideoFile
	}
	if thumbnail == "" {
		return nil, ErrMissingThumbnail
	}

	now := time.Now()
	return &Video{
		ID:          uuid.New(),
		Owner:       owner,
		Title:       title,
		Description: description,
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
		IsPublished: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOwnedBy reports whether userID owns the video.
func (v *Video) IsOwnedBy(userID uuid.UUID) bool {
	return v.Owner == userID
}

// Apply copies every supplied field of p onto the video.
func (v *Video) Apply(p VideoPatch) {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Duration != nil {
		v.Duration = *p.Duration
	}
	if p.Thumbnail != nil {
		v.Thumbnail = *p.Thumbnail
	}
	if p.IsPublished != nil {
		v.IsPublished = *p.IsPublished
	}
	v.UpdatedAt = time.Now()
}

// VideoPatch is a partial update. Nil fields are left untouched.
type VideoPatch struct {
	Title       *string
	Description *string
	Duration    *float64
	Thumbnail   *string
	IsPublished *bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p VideoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Duration == nil &&
		p.Thumbnail == nil && p.IsPublished == nil
}

// Validate rejects supplied fields that would break the Video invariants.
func (p VideoPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return ErrEmptyDescription
	}
	if p.Duration != nil && !ValidDuration(*p.Duration) {
		return ErrInvalidDuration
	}
	if p.Thumbnail != nil && *p.Thumbnail == "" {
		return ErrMissingThumbnail
	}
	return nil
}

// ValidDuration accepts finite positive seconds. NaN and Inf cannot be
// encoded as JSON.
func ValidDuration(d float64) bool {
	return d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
