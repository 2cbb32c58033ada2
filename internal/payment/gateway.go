package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"expedition-booking/pkg/utils"

	"go.uber.org/zap"
)

// ErrIntentFailed is what callers see when the provider call fails. The
// underlying provider error is logged server-side only.
var ErrIntentFailed = errors.New("failed to create payment order")

// Gateway runs the provider-independent purchase intent pipeline: booking
// reference first, then either a synthesized demo intent (credentials
// absent) or a live call through the Adapter.
type Gateway struct {
	adapter Adapter
	log     *zap.Logger
}

func NewGateway(adapter Adapter, log *zap.Logger) *Gateway {
	return &Gateway{
		adapter: adapter,
		log:     log.With(zap.String("gateway", adapter.Name())),
	}
}

// Configured reports whether the provider's server-side credentials are
// present, without revealing them.
func (g *Gateway) Configured() bool {
	return g.adapter.Configured()
}

// ReferenceField names the JSON field the provider reference is echoed
// under (orderId or sessionId).
func (g *Gateway) ReferenceField() string {
	return g.adapter.ReferenceField()
}

// CreatePurchaseIntent converts one checkout attempt into a provider
// purchase intent. The booking reference is generated exactly once per
// attempt, before anything else, so demo and live responses correlate the
// same way.
func (g *Gateway) CreatePurchaseIntent(ctx context.Context, order CheckoutOrder) (*Intent, error) {
	bookingID := utils.GenerateBookingID()
	amountMinor := MinorUnits(order.Amount)
	currency := strings.ToUpper(order.Currency)

	if !g.adapter.Configured() {
		g.log.Info("Credentials absent, issuing demo intent",
			zap.String("booking_id", bookingID),
			zap.Int64("amount_minor", amountMinor),
			zap.String("currency", currency),
		)

		return &Intent{
			BookingID:   bookingID,
			Reference:   g.adapter.DemoReference(utils.BookingToken(bookingID)),
			AmountMinor: amountMinor,
			Currency:    currency,
			Demo:        true,
		}, nil
	}

	req := IntentRequest{
		BookingID:   bookingID,
		AmountMinor: amountMinor,
		Currency:    currency,
		Description: fmt.Sprintf("%s expedition, %s", order.MountainName, order.Date),
		Metadata: map[string]string{
			"mountainId":    order.MountainID,
			"mountainName":  order.MountainName,
			"date":          order.Date,
			"participants":  strconv.Itoa(order.Participants),
			"customerName":  order.CustomerName,
			"customerEmail": order.CustomerEmail,
		},
	}

	intent, err := g.adapter.CreateIntent(ctx, req)
	if err != nil {
		g.log.Error("Provider call failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.Int64("amount_minor", amountMinor),
			zap.String("currency", currency),
		)
		return nil, ErrIntentFailed
	}

	intent.BookingID = bookingID

	g.log.Info("Purchase intent created",
		zap.String("booking_id", bookingID),
		zap.String("reference", intent.Reference),
		zap.Int64("amount_minor", intent.AmountMinor),
		zap.String("currency", intent.Currency),
	)

	return intent, nil
}
