package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "campmed/internal/errors"
)

// ParseID converts a hex path identifier into a document id.
func ParseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, hex)
	}
	return id, nil
}

// findAll decodes every document matching filter. An empty match yields an
// empty, non-nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s.find: %w", coll.Name(), err)
	}

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s.decode: %w", coll.Name(), err)
	}
	return docs, nil
}

// findOne returns nil without error when no document matches.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s.findOne: %w", coll.Name(), err)
	}
	return &doc, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (*InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s.insertOne: %w", coll.Name(), err)
	}
	return newInsertResult(res), nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, hex string, update any, opts ...options.Lister[options.UpdateOneOptions]) (*UpdateResult, error) {
	id, err := ParseID(hex)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s.updateOne: %w", coll.Name(), err)
	}
	return newUpdateResult(res), nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, hex string) (*DeleteResult, error) {
	id, err := ParseID(hex)
	if err != nil {
		return nil, err
	}
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("%s.deleteOne: %w", coll.Name(), err)
	}
	return newDeleteResult(res), nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, hex string) (*T, error) {
	id, err := ParseID(hex)
	if err != nil {
		return nil, err
	}
	return findOne[T](ctx, coll, bson.D{{Key: "_id", Value: id}})
}

// IsDuplicateKey reports whether err is a unique index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
