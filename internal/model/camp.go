package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Camp represents a medical camp listing.
type Camp struct {
	ID                     bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	CampName               string        `json:"campName" bson:"campName"`
	CampFees               float64       `json:"campFees" bson:"campFees"`
	Image                  string        `json:"image" bson:"image"`
	Date                   string        `json:"date" bson:"date"`
	Time                   string        `json:"time" bson:"time"`
	Location               string        `json:"location" bson:"location"`
	HealthcareProfessional string        `json:"healthcareProfessional" bson:"healthcareProfessional"`
	ParticipantCount       int64         `json:"participantCount" bson:"participantCount"`
	Description            string        `json:"description" bson:"description"`
	ShortDescription       string        `json:"shortDescription" bson:"shortDescription"`
	Email                  string        `json:"email,omitempty" bson:"email,omitempty"`
}

// CampUpdate carries the editable camp fields. Nil fields are left untouched.
// The participant counter is only ever changed by increments.
type CampUpdate struct {
	CampName               *string  `json:"campName"`
	CampFees               *float64 `json:"campFees"`
	Image                  *string  `json:"image"`
	Date                   *string  `json:"date"`
	Time                   *string  `json:"time"`
	Location               *string  `json:"location"`
	HealthcareProfessional *string  `json:"healthcareProfessional"`
	Description            *string  `json:"description"`
	ShortDescription       *string  `json:"shortDescription"`
}

// SetDocument returns the $set document for the non-nil fields.
func (u CampUpdate) SetDocument() bson.D {
	set := bson.D{}
	add := func(key string, value any, present bool) {
		if present {
			set = append(set, bson.E{Key: key, Value: value})
		}
	}
	add("campName", deref(u.CampName), u.CampName != nil)
	add("campFees", deref(u.CampFees), u.CampFees != nil)
	add("image", deref(u.Image), u.Image != nil)
	add("date", deref(u.Date), u.Date != nil)
	add("time", deref(u.Time), u.Time != nil)
	add("location", deref(u.Location), u.Location != nil)
	add("healthcareProfessional", deref(u.HealthcareProfessional), u.HealthcareProfessional != nil)
	add("description", deref(u.Description), u.Description != nil)
	add("shortDescription", deref(u.ShortDescription), u.ShortDescription != nil)
	return set
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
