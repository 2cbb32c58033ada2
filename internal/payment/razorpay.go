package payment

import (
	"context"
	"fmt"
	"strings"

	"expedition-booking/pkg/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayAdapter creates Razorpay orders. The key ID doubles as the
// publishable key the checkout widget needs client-side.
type RazorpayAdapter struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

func NewRazorpayAdapter(cfg utils.RazorpayConfig) *RazorpayAdapter {
	a := &RazorpayAdapter{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}
	if a.Configured() {
		a.client = razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	}
	return a
}

func (a *RazorpayAdapter) Name() string { return "razorpay" }

func (a *RazorpayAdapter) Configured() bool {
	return a.keyID != "" && a.keySecret != ""
}

func (a *RazorpayAdapter) ClientKey() string { return a.keyID }

func (a *RazorpayAdapter) ReferenceField() string { return RefFieldOrder }

func (a *RazorpayAdapter) DemoReference(token string) string {
	return "order_" + token
}

// CreateIntent creates a Razorpay order. The booking reference travels as
// the order receipt and the catalog selection as notes, so bookings can be
// reconciled from the Razorpay dashboard.
func (a *RazorpayAdapter) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	notes := make(map[string]interface{}, len(req.Metadata))
	for k, v := range req.Metadata {
		notes[k] = v
	}

	data := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": strings.ToUpper(req.Currency),
		"receipt":  req.BookingID,
		"notes":    notes,
	}

	body, err := a.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay order create: response missing order id")
	}

	amount := req.AmountMinor
	if v, ok := body["amount"].(float64); ok {
		amount = int64(v)
	}
	currency := req.Currency
	if v, ok := body["currency"].(string); ok && v != "" {
		currency = strings.ToUpper(v)
	}

	return &Intent{
		Reference:   orderID,
		AmountMinor: amount,
		Currency:    currency,
		ClientKey:   a.keyID,
	}, nil
}
