package model

import "go.mongodb.org/mongo-driver/v2/bson"

// PaymentStatus tracks whether a registration has been paid for.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// Confirmation tracks whether an admin confirmed a registration.
type Confirmation string

const (
	ConfirmationPending   Confirmation = "unconfirmed"
	ConfirmationConfirmed Confirmation = "Confirmed"
)

// Participant represents a registration of a person for a camp.
type Participant struct {
	ID                     bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	ParticipantEmail       string        `json:"participantEmail" bson:"participantEmail"`
	ParticipantName        string        `json:"participantName" bson:"participantName"`
	PaymentStatus          PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	Confirmation           Confirmation  `json:"confirmation" bson:"confirmation"`
	CampID                 string        `json:"campId" bson:"campId"`
	CampName               string        `json:"campName,omitempty" bson:"campName,omitempty"`
	CampFees               float64       `json:"campFees,omitempty" bson:"campFees,omitempty"`
	Location               string        `json:"location,omitempty" bson:"location,omitempty"`
	HealthcareProfessional string        `json:"healthcareProfessional,omitempty" bson:"healthcareProfessional,omitempty"`
}
