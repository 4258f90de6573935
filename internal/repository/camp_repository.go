package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"campmed/internal/model"
)

// CampRepository defines camp persistence operations.
type CampRepository interface {
	List(ctx context.Context) ([]model.Camp, error)
	FindByID(ctx context.Context, id string) (*model.Camp, error)
	FindByOrganizer(ctx context.Context, email string) ([]model.Camp, error)
	Create(ctx context.Context, camp *model.Camp) (*InsertResult, error)
	Update(ctx context.Context, id string, update model.CampUpdate) (*UpdateResult, error)
	IncrementParticipants(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	UpsertByName(ctx context.Context, camp *model.Camp) (*UpdateResult, error)
}

type campRepository struct {
	coll *mongo.Collection
}

// NewCampRepository builds a Mongo-backed camp repository.
func NewCampRepository(coll *mongo.Collection) CampRepository {
	return &campRepository{coll: coll}
}

// List returns every camp, most popular first.
func (r *campRepository) List(ctx context.Context) ([]model.Camp, error) {
	opts := options.Find().SetSort(bson.D{{Key: "participantCount", Value: -1}})
	return findAll[model.Camp](ctx, r.coll, bson.D{}, opts)
}

func (r *campRepository) FindByID(ctx context.Context, id string) (*model.Camp, error) {
	return findByID[model.Camp](ctx, r.coll, id)
}

func (r *campRepository) FindByOrganizer(ctx context.Context, email string) ([]model.Camp, error) {
	return findAll[model.Camp](ctx, r.coll, bson.D{{Key: "email", Value: email}})
}

func (r *campRepository) Create(ctx context.Context, camp *model.Camp) (*InsertResult, error) {
	return insertOne(ctx, r.coll, camp)
}

// Update applies a partial $set. An update with no fields matches without modifying.
func (r *campRepository) Update(ctx context.Context, id string, update model.CampUpdate) (*UpdateResult, error) {
	set := update.SetDocument()
	if len(set) == 0 {
		camp, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		res := &UpdateResult{Acknowledged: true}
		if camp != nil {
			res.MatchedCount = 1
		}
		return res, nil
	}
	return updateByID(ctx, r.coll, id, bson.D{{Key: "$set", Value: set}})
}

// IncrementParticipants adds one to participantCount, creating a counter-only
// document when the id is unknown. It is not coordinated with participant inserts.
func (r *campRepository) IncrementParticipants(ctx context.Context, id string) (*UpdateResult, error) {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "participantCount", Value: 1}}}}
	return updateByID(ctx, r.coll, id, update, options.UpdateOne().SetUpsert(true))
}

func (r *campRepository) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}

// UpsertByName replaces the listing fields of the camp with the same name,
// keeping any existing participant count.
func (r *campRepository) UpsertByName(ctx context.Context, camp *model.Camp) (*UpdateResult, error) {
	set := bson.D{
		{Key: "campFees", Value: camp.CampFees},
		{Key: "image", Value: camp.Image},
		{Key: "date", Value: camp.Date},
		{Key: "time", Value: camp.Time},
		{Key: "location", Value: camp.Location},
		{Key: "healthcareProfessional", Value: camp.HealthcareProfessional},
		{Key: "description", Value: camp.Description},
		{Key: "shortDescription", Value: camp.ShortDescription},
		{Key: "email", Value: camp.Email},
	}
	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{{Key: "participantCount", Value: camp.ParticipantCount}}},
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "campName", Value: camp.CampName}},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("camps.upsertByName: %w", err)
	}
	return newUpdateResult(res), nil
}
