package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"campmed/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*InsertResult, error)
	UpdateProfile(ctx context.Context, id string, profile model.UserProfile) (*UpdateResult, error)
	SetRole(ctx context.Context, email string, role model.Role) (*UpdateResult, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed user repository.
func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &userRepository{coll: coll}
}

// FindByEmail returns nil when no user has the email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.D{{Key: "email", Value: email}})
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*InsertResult, error) {
	return insertOne(ctx, r.coll, user)
}

// UpdateProfile sets name, photo and contact, inserting the document when the id is unknown.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, profile model.UserProfile) (*UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: profile}}
	return updateByID(ctx, r.coll, id, update, options.UpdateOne().SetUpsert(true))
}

// SetRole sets the role of the user with the email, creating the user if absent.
func (r *userRepository) SetRole(ctx context.Context, email string, role model.Role) (*UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("users.setRole: %w", err)
	}
	return newUpdateResult(res), nil
}
