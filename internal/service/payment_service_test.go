package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "campmed/internal/errors"
	"campmed/internal/gateway"
	"campmed/internal/model"
	"campmed/internal/repository"
)

func price(v float64) *float64 { return &v }

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name          string
		fee           float64
		price         *float64
		camp          bool
		wantAmount    int64
		expectedError error
	}{
		{name: "amount from fee", fee: 19.99, camp: true, wantAmount: 1999},
		{name: "matching price accepted", fee: 50, price: price(50), camp: true, wantAmount: 5000},
		{name: "fractional cents round", fee: 0.105, camp: true, wantAmount: 11},
		{name: "price mismatch", fee: 50, price: price(1), camp: true, expectedError: apperrors.ErrPriceMismatch},
		{name: "free camp", fee: 0, camp: true, expectedError: apperrors.ErrInvalidAmount},
		{name: "unknown camp", camp: false, expectedError: apperrors.ErrCampNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camps := new(MockCampRepository)
			if tt.camp {
				camps.On("FindByID", mock.Anything, campID).Return(&model.Camp{CampFees: tt.fee}, nil)
			} else {
				camps.On("FindByID", mock.Anything, campID).Return(nil, nil)
			}
			gw := new(MockGateway)
			if tt.expectedError == nil {
				gw.On("CreatePaymentIntent", mock.Anything, tt.wantAmount).Return(&gateway.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)
			}

			service := NewPaymentService(camps, new(MockPaymentRepository), gw)
			intent, err := service.CreatePaymentIntent(context.Background(), campID, tt.price)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, intent)
				gw.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pi_1_secret", intent.ClientSecret)
			gw.AssertExpectations(t)
		})
	}
}

func TestPaymentService_InvalidCampID(t *testing.T) {
	camps := new(MockCampRepository)
	camps.On("FindByID", mock.Anything, "nope").Return(nil, apperrors.ErrInvalidID)

	service := NewPaymentService(camps, new(MockPaymentRepository), new(MockGateway))
	_, err := service.CreatePaymentIntent(context.Background(), "nope", nil)

	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func TestPaymentService_RecordPaymentStampsDate(t *testing.T) {
	payments := new(MockPaymentRepository)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Date == "2026-03-01T10:00:00Z"
	})).Return(&repository.InsertResult{Acknowledged: true}, nil)

	service := NewPaymentService(new(MockCampRepository), payments, new(MockGateway)).(*paymentService)
	service.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	res, err := service.RecordPayment(context.Background(), &model.Payment{Email: "a@b.com", Price: 20, TransactionID: "pi_1"})

	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	payments.AssertExpectations(t)
}
