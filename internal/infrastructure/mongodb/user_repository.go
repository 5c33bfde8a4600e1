package mongodb

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// UserRepository implements repository.UserRepository on MongoDB.
type UserRepository struct {
	users collection[userDoc]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: newCollection[userDoc](db, CollUsers)}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.users.insertOne(ctx, newUserDoc(user))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	doc, err := r.users.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

var _ repository.UserRepository = (*UserRepository)(nil)
