package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Gateway creates payment intents with an external payment provider and
// returns the client-usable secret needed to complete the charge.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (clientSecret string, err error)
}

// StripeGateway is the Stripe-backed Gateway implementation. Intents are
// card-only and denominated in a single fixed currency.
type StripeGateway struct {
	currency string
}

// NewStripeGateway configures the Stripe client with the server secret key.
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	stripe.Key = secretKey
	if currency == "" {
		currency = "usd"
	}
	return &StripeGateway{currency: currency}
}

// CreateIntent creates a payment intent for the given amount in minor units.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
