package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"campmed/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	List(ctx context.Context) ([]model.Feedback, error)
	Create(ctx context.Context, feedback *model.Feedback) (*InsertResult, error)
}

type feedbackRepository struct {
	coll *mongo.Collection
}

// NewFeedbackRepository builds a Mongo-backed feedback repository.
func NewFeedbackRepository(coll *mongo.Collection) FeedbackRepository {
	return &feedbackRepository{coll: coll}
}

func (r *feedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	return findAll[model.Feedback](ctx, r.coll, bson.D{})
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) (*InsertResult, error) {
	return insertOne(ctx, r.coll, feedback)
}
