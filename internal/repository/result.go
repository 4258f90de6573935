package repository

import "go.mongodb.org/mongo-driver/v2/mongo"

// InsertResult is the wire form of a single-document insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult is the wire form of an update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult is the wire form of a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func newInsertResult(res *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{Acknowledged: res.Acknowledged, InsertedID: res.InsertedID}
}

func newUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func newDeleteResult(res *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}
}
