package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"campmed/internal/model"
)

// ParticipantRepository defines registration persistence operations.
type ParticipantRepository interface {
	List(ctx context.Context) ([]model.Participant, error)
	FindByEmail(ctx context.Context, email string) ([]model.Participant, error)
	FindByID(ctx context.Context, id string) (*model.Participant, error)
	Create(ctx context.Context, participant *model.Participant) (*InsertResult, error)
	RenameByEmail(ctx context.Context, email, name string) (*UpdateResult, error)
	MarkPaid(ctx context.Context, id string) (*UpdateResult, error)
	Confirm(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type participantRepository struct {
	coll *mongo.Collection
}

// NewParticipantRepository builds a Mongo-backed participant repository.
func NewParticipantRepository(coll *mongo.Collection) ParticipantRepository {
	return &participantRepository{coll: coll}
}

func (r *participantRepository) List(ctx context.Context) ([]model.Participant, error) {
	return findAll[model.Participant](ctx, r.coll, bson.D{})
}

func (r *participantRepository) FindByEmail(ctx context.Context, email string) ([]model.Participant, error) {
	return findAll[model.Participant](ctx, r.coll, bson.D{{Key: "participantEmail", Value: email}})
}

func (r *participantRepository) FindByID(ctx context.Context, id string) (*model.Participant, error) {
	return findByID[model.Participant](ctx, r.coll, id)
}

func (r *participantRepository) Create(ctx context.Context, participant *model.Participant) (*InsertResult, error) {
	return insertOne(ctx, r.coll, participant)
}

// RenameByEmail rewrites participantName on every registration of the email.
func (r *participantRepository) RenameByEmail(ctx context.Context, email, name string) (*UpdateResult, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.D{{Key: "participantEmail", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "participantName", Value: name}}}},
	)
	if err != nil {
		return nil, fmt.Errorf("participants.updateMany: %w", err)
	}
	return newUpdateResult(res), nil
}

func (r *participantRepository) MarkPaid(ctx context.Context, id string) (*UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "paymentStatus", Value: model.PaymentStatusPaid}}}}
	return updateByID(ctx, r.coll, id, update)
}

func (r *participantRepository) Confirm(ctx context.Context, id string) (*UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "confirmation", Value: model.ConfirmationConfirmed}}}}
	return updateByID(ctx, r.coll, id, update)
}

func (r *participantRepository) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
