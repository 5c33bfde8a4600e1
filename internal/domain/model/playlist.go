package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered list of video references owned by a user.
// Videos may repeat and may point to videos that were deleted since.
type Playlist struct {
	ID          uuid.UUID
	Name        string
	Description string
	Owner       uuid.UUID
	Videos      []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var ErrEmptyName = errors.New("name cannot be empty")

func NewPlaylist(owner uuid.UUID, name, description string) (*Playlist, error) {
	if owner == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	return &Playlist{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Playlist) IsOwnedBy(userID uuid.UUID) bool {
	return p.Owner == userID
}

// AddVideo appends videoID without checking for duplicates.
func (p *Playlist) AddVideo(videoID uuid.UUID) {
	p.Videos = append(p.Videos, videoID)
	p.UpdatedAt = time.Now()
}

// RemoveVideo drops every occurrence of videoID, keeping the order of the rest.
func (p *Playlist) RemoveVideo(videoID uuid.UUID) {
	kept := make([]uuid.UUID, 0, len(p.Videos))
	for _, id := range p.Videos {
		if id != videoID {
			kept = append(kept, id)
		}
	}
	p.Videos = kept
	p.UpdatedAt = time.Now()
}

// Apply copies every supplied field of patch onto the playlist.
func (p *Playlist) Apply(patch PlaylistPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = time.Now()
}

// PlaylistPatch is a partial update. Nil fields are left untouched.
type PlaylistPatch struct {
	Name        *string
	Description *string
}

func (p PlaylistPatch) Validate() error {
	if p.Name == nil && p.Description == nil {
		return ErrEmptyPatch
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
