package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"secondlook/internal/domain/services"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeIntentCreator creates payment intents against Stripe. The
// client secret Stripe returns is opaque to this service and relayed
// verbatim to the caller, which completes the charge client-side.
type StripeIntentCreator struct {
	logger *slog.Logger
}

// NewStripeIntentCreator configures the Stripe SDK with the given
// secret key and returns the bridge.
func NewStripeIntentCreator(secretKey string, logger *slog.Logger) (services.IntentCreator, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key cannot be empty")
	}

	stripe.Key = secretKey

	return &StripeIntentCreator{logger: logger}, nil
}

// CreateIntent asks Stripe for a payment intent over the given amount,
// already converted to the processor's minor units (cents).
func (c *StripeIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}

	c.logger.Debug("payment intent created", "amount", amountMinorUnits, "intent_id", intent.ID)

	return intent.ClientSecret, nil
}
