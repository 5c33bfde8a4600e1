package model

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewVideo(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name        string
		owner       uuid.UUID
		title       string
		description string
		duration    float64
		videoFile   string
		thumbnail   string
		wantErr     error
	}{
		{"valid video", owner, "My Video", "about cats", 12.5, "http://cdn/v.mp4", "http://cdn/t.jpg", nil},
		{"nil owner", uuid.Nil, "My Video", "about cats", 12.5, "http://cdn/v.mp4", "http://cdn/t.jpg", ErrInvalidOwner},
		{"blank title", owner, "   ", "about cats", 12.5, "http://cdn/v.mp4", "http://cdn/t.jpg", ErrEmptyTitle},
		{"title too long", owner, strings.Repeat("a", 256), "about cats", 12.5, "http://cdn/v.mp4", "http://cdn/t.jpg", ErrTitleTooLong},
		{"title at max length", owner, strings.Repeat("a", 255), "about cats", 12.5, "http://cdn/v.mp4", "http://cdn/t.jpg", nil},
		{"blank description", owner, "My Video", "", 12.5, "http://cdn/v.mp4", "http://cdn/t.jpg", ErrEmptyDescription},
		{"zero duration", owner, "My Video", "about cats", 0, "http://cdn/v.mp4", "http://cdn/t.jpg", ErrInvalidDuration},
		{"NaN duration", owner, "My Video", "about cats", math.NaN(), "http://cdn/v.mp4", "http://cdn/t.jpg", ErrInvalidDuration},
		{"infinite duration", owner, "My Video", "about cats", math.Inf(1), "http://cdn/v.mp4", "http://cdn/t.jpg", ErrInvalidDuration},
		{"missing video file", owner, "My Video", "about cats", 12.5, "", "http://cdn/t.jpg", ErrMissingVideoFile},
		{"missing thumbnail", owner, "My Video", "about cats", 12.5, "http://cdn/v.mp4", "", ErrMissingThumbnail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := NewVideo(tt.owner, tt.title, tt.description, tt.duration, tt.videoFile, tt.thumbnail)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewVideo() error = %v, want %v", err, tt.wantErr)
				}
				if video != nil {
					t.Error("NewVideo() should return nil video on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewVideo() unexpected error = %v", err)
			}
			if video.ID == uuid.Nil {
				t.Error("expected generated ID")
			}
			if video.IsPublished {
				t.Error("new videos must start unpublished")
			}
			if !video.IsOwnedBy(tt.owner) {
				t.Error("expected owner to be set")
			}
			if video.CreatedAt.IsZero() || video.UpdatedAt.IsZero() {
				t.Error("expected timestamps to be set")
			}
		})
	}
}

func TestVideo_Apply_PartialUpdate(t *testing.T) {
	video, err := NewVideo(uuid.New(), "Original", "Original description", 30, "http://cdn/v.mp4", "http://cdn/t.jpg")
	if err != nil {
		t.Fatalf("NewVideo() error = %v", err)
	}
	before := *video

	title := "Renamed"
	video.Apply(VideoPatch{Title: &title})

	if video.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", video.Title, "Renamed")
	}
	if video.Description != before.Description {
		t.Errorf("Description changed to %q", video.Description)
	}
	if video.Duration != before.Duration || video.Thumbnail != before.Thumbnail || video.Owner != before.Owner {
		t.Error("fields that were not supplied must be left untouched")
	}
}

func TestVideoPatch_Validate(t *testing.T) {
	blank := " "
	ok := "fine"
	negative := -1.0
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name    string
		patch   VideoPatch
		wantErr error
	}{
		{"empty patch", VideoPatch{}, ErrEmptyPatch},
		{"blank title", VideoPatch{Title: &blank}, ErrEmptyTitle},
		{"blank description", VideoPatch{Description: &blank}, ErrEmptyDescription},
		{"negative duration", VideoPatch{Duration: &negative}, ErrInvalidDuration},
		{"NaN duration", VideoPatch{Duration: &nan}, ErrInvalidDuration},
		{"infinite duration", VideoPatch{Duration: &inf}, ErrInvalidDuration},
		{"valid title", VideoPatch{Title: &ok}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
