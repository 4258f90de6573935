package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Feedback is an append-only review left by a participant.
type Feedback struct {
	ID      bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name    string        `json:"name" bson:"name"`
	Email   string        `json:"email" bson:"email"`
	Photo   string        `json:"photo,omitempty" bson:"photo,omitempty"`
	Rating  float64       `json:"rating" bson:"rating"`
	Content string        `json:"content" bson:"content"`
}
