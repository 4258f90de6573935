package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names inside the campMed database.
const (
	UsersCollection        = "users"
	CampsCollection        = "camps"
	ParticipantsCollection = "participants"
	FeedbackCollection     = "feedback"
	PaymentsCollection     = "payments"
)

// Collections holds the handles of the five document collections.
// Repositories receive their collection from here instead of a global client.
type Collections struct {
	Users        *mongo.Collection
	Camps        *mongo.Collection
	Participants *mongo.Collection
	Feedback     *mongo.Collection
	Payments     *mongo.Collection
}

// Mongo owns the client connection for the lifetime of the process.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongo connects to MongoDB using the stable API v1 and verifies the connection.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Mongo{
		client:   client,
		database: client.Database(database),
	}, nil
}

// Collections returns the collection handles.
func (m *Mongo) Collections() Collections {
	return Collections{
		Users:        m.database.Collection(UsersCollection),
		Camps:        m.database.Collection(CampsCollection),
		Participants: m.database.Collection(ParticipantsCollection),
		Feedback:     m.database.Collection(FeedbackCollection),
		Payments:     m.database.Collection(PaymentsCollection),
	}
}

// EnsureIndexes creates the indexes the queries rely on. The unique email index
// backs the one-user-per-email rule when two sign-ins race. It only covers
// documents that carry an email.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: UsersCollection,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "email", Value: 1}},
				// Profile upserts on an unknown id insert documents without an email.
				Options: options.Index().
					SetName("email_unique").
					SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "email", Value: bson.D{{Key: "$exists", Value: true}}}}),
			},
		},
		{
			collection: CampsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "participantCount", Value: -1}},
				Options: options.Index().SetName("participant_count_desc"),
			},
		},
		{
			collection: CampsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("organizer_email"),
			},
		},
		{
			collection: ParticipantsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "participantEmail", Value: 1}},
				Options: options.Index().SetName("participant_email"),
			},
		},
	}

	for _, idx := range indexes {
		if _, err := m.database.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}

// Ping checks the connection to the server.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
