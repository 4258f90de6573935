package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campmed/internal/errors"
	"campmed/internal/gateway"
	"campmed/internal/model"
	"campmed/internal/repository"
)

var minorUnitsPerDollar = decimal.NewFromInt(100)

// PaymentService handles payment operations.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, campID string, price *float64) (*gateway.PaymentIntent, error)
	RecordPayment(ctx context.Context, payment *model.Payment) (*repository.InsertResult, error)
}

type paymentService struct {
	camps       repository.CampRepository
	paymentRepo repository.PaymentRepository
	gateway     gateway.PaymentGateway
	now         func() time.Time
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	camps repository.CampRepository,
	paymentRepo repository.PaymentRepository,
	gw gateway.PaymentGateway,
) PaymentService {
	return &paymentService{
		camps:       camps,
		paymentRepo: paymentRepo,
		gateway:     gw,
		now:         time.Now,
	}
}

// CreatePaymentIntent charges the fee of the camp. A client price is only
// a cross-check and must equal the fee.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, campID string, price *float64) (*gateway.PaymentIntent, error) {
	camp, err := s.camps.FindByID(ctx, campID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, errors.ErrCampNotFound
	}

	fee := decimal.NewFromFloat(camp.CampFees)
	if price != nil && !decimal.NewFromFloat(*price).Equal(fee) {
		return nil, errors.ErrPriceMismatch
	}

	amount := fee.Mul(minorUnitsPerDollar).Round(0).IntPart()
	if amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	return s.gateway.CreatePaymentIntent(ctx, amount)
}

// RecordPayment stores a payment record, stamping the date when absent.
func (s *paymentService) RecordPayment(ctx context.Context, payment *model.Payment) (*repository.InsertResult, error) {
	if payment.Date == "" {
		payment.Date = s.now().UTC().Format(time.RFC3339)
	}
	return s.paymentRepo.Create(ctx, payment)
}
