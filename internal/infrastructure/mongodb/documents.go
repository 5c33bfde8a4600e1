package mongodb

import (
	"time"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// Identifiers are stored as their canonical string form in _id and in every
// reference field.

type userDoc struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	FullName  string    `bson:"fullName"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newUserDoc(u *model.User) userDoc {
	return userDoc{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toModel() (*model.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:        id,
		Username:  d.Username,
		Email:     d.Email,
		FullName:  d.FullName,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

type videoDoc struct {
	ID          string    `bson:"_id"`
	Owner       string    `bson:"owner"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Duration    float64   `bson:"duration"`
	VideoFile   string    `bson:"videoFile"`
	Thumbnail   string    `bson:"thumbnail"`
	IsPublished bool      `bson:"isPublished"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func newVideoDoc(v *model.Video) videoDoc {
	return videoDoc{
		ID:          v.ID.String(),
		Owner:       v.Owner.String(),
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (d videoDoc) toModel() (*model.Video, error) {
	ids, err := parseIDs(d.ID, d.Owner)
	if err != nil {
		return nil, err
	}
	return &model.Video{
		ID:          ids[0],
		Owner:       ids[1],
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		VideoFile:   d.VideoFile,
		Thumbnail:   d.Thumbnail,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

type commentDoc struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Video     string    `bson:"video"`
	Owner     string    `bson:"owner"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newCommentDoc(c *model.Comment) commentDoc {
	return commentDoc{
		ID:        c.ID.String(),
		Content:   c.Content,
		Video:     c.Video.String(),
		Owner:     c.Owner.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d commentDoc) toModel() (*model.Comment, error) {
	ids, err := parseIDs(d.ID, d.Video, d.Owner)
	if err != nil {
		return nil, err
	}
	return &model.Comment{
		ID:        ids[0],
		Content:   d.Content,
		Video:     ids[1],
		Owner:     ids[2],
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

type tweetDoc struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Owner     string    `bson:"owner"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newTweetDoc(t *model.Tweet) tweetDoc {
	return tweetDoc{
		ID:        t.ID.String(),
		Content:   t.Content,
		Owner:     t.Owner.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (d tweetDoc) toModel() (*model.Tweet, error) {
	ids, err := parseIDs(d.ID, d.Owner)
	if err != nil {
		return nil, err
	}
	return &model.Tweet{
		ID:        ids[0],
		Content:   d.Content,
		Owner:     ids[1],
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

type playlistDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Owner       string    `bson:"owner"`
	Videos      []string  `bson:"videos"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func newPlaylistDoc(p *model.Playlist) playlistDoc {
	videos := make([]string, len(p.Videos))
	for i, v := range p.Videos {
		videos[i] = v.String()
	}
	return playlistDoc{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Owner:       p.Owner.String(),
		Videos:      videos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d playlistDoc) toModel() (*model.Playlist, error) {
	ids, err := parseIDs(d.ID, d.Owner)
	if err != nil {
		return nil, err
	}
	videos, err := parseIDs(d.Videos...)
	if err != nil {
		return nil, err
	}
	return &model.Playlist{
		ID:          ids[0],
		Name:        d.Name,
		Description: d.Description,
		Owner:       ids[1],
		Videos:      videos,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

type subscriptionDoc struct {
	ID         string    `bson:"_id"`
	Subscriber string    `bson:"subscriber"`
	Channel    string    `bson:"channel"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func newSubscriptionDoc(s *model.Subscription) subscriptionDoc {
	return subscriptionDoc{
		ID:         s.ID.String(),
		Subscriber: s.Subscriber.String(),
		Channel:    s.Channel.String(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (d subscriptionDoc) toModel() (*model.Subscription, error) {
	ids, err := parseIDs(d.ID, d.Subscriber, d.Channel)
	if err != nil {
		return nil, err
	}
	return &model.Subscription{
		ID:         ids[0],
		Subscriber: ids[1],
		Channel:    ids[2],
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

// userViewDoc is the shape produced by the subscription $lookup pipelines.
type userViewDoc struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
	Email    string `bson:"email"`
	FullName string `bson:"fullName"`
}

func parseIDs(raw ...string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
