package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"campmed/internal/model"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*InsertResult, error)
}

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(coll *mongo.Collection) PaymentRepository {
	return &paymentRepository{coll: coll}
}

// Create records a payment. Records are never updated.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*InsertResult, error) {
	return insertOne(ctx, r.coll, payment)
}
