package payment

import (
	"context"
	"fmt"
	"strings"

	"expedition-booking/pkg/utils"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeAdapter creates Stripe Checkout sessions in payment mode. The client
// is an explicit instance bound to the configured secret key, not the
// package-global stripe.Key.
type StripeAdapter struct {
	secretKey  string
	successURL string
	cancelURL  string
	api        *client.API
}

func NewStripeAdapter(cfg utils.StripeConfig) *StripeAdapter {
	a := &StripeAdapter{
		secretKey:  cfg.SecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
	if a.Configured() {
		a.api = &client.API{}
		a.api.Init(cfg.SecretKey, nil)
	}
	return a
}

func (a *StripeAdapter) Name() string { return "stripe" }

func (a *StripeAdapter) Configured() bool {
	return a.secretKey != ""
}

// ClientKey is empty: the hosted Checkout page is reached through the
// session URL, no publishable key crosses this API.
func (a *StripeAdapter) ClientKey() string { return "" }

func (a *StripeAdapter) ReferenceField() string { return RefFieldSession }

func (a *StripeAdapter) DemoReference(token string) string {
	return "sess_" + token
}

// CreateIntent creates a Checkout session for one expedition booking. The
// booking reference travels as the client reference id and the catalog
// selection as session metadata.
func (a *StripeAdapter) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(a.successURL),
		CancelURL:         stripe.String(a.cancelURL),
		ClientReferenceID: stripe.String(req.BookingID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := a.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session create: %w", err)
	}

	amount := sess.AmountTotal
	if amount == 0 {
		amount = req.AmountMinor
	}
	currency := req.Currency
	if sess.Currency != "" {
		currency = strings.ToUpper(string(sess.Currency))
	}

	return &Intent{
		Reference:   sess.ID,
		AmountMinor: amount,
		Currency:    currency,
		CheckoutURL: sess.URL,
	}, nil
}
