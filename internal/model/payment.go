package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Payment is an append-only record written after a successful external charge.
type Payment struct {
	ID            bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email         string        `json:"email" bson:"email"`
	Price         float64       `json:"price" bson:"price"`
	CampID        string        `json:"campId" bson:"campId"`
	ParticipantID string        `json:"participantId,omitempty" bson:"participantId,omitempty"`
	TransactionID string        `json:"transactionId" bson:"transactionId"`
	Date          string        `json:"date,omitempty" bson:"date,omitempty"`
}
