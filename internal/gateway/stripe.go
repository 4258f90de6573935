// Package gateway creates payment intents with the external card processor.
package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	apperrors "campmed/internal/errors"
)

// Currency is the only currency camps are charged in.
const Currency = "usd"

// PaymentIntent is the part of a created intent returned to the browser.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates payment intents for an amount in minor units.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (*PaymentIntent, error)
}

// StripeGateway implements PaymentGateway on the Stripe API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for the secret key. An empty key yields a
// gateway that refuses every request.
func NewStripeGateway(secretKey string) *StripeGateway {
	if secretKey == "" {
		return &StripeGateway{}
	}
	return &StripeGateway{api: client.New(secretKey, nil)}
}

// CreatePaymentIntent creates a card PaymentIntent for amount cents.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64) (*PaymentIntent, error) {
	if g.api == nil {
		return nil, apperrors.ErrGatewayUnavailable
	}
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
