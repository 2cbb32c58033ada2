package payment

import (
	"context"
	"math"
)

// JSON field names under which each provider's reference is echoed back to
// the checkout UI.
const (
	RefFieldOrder   = "orderId"
	RefFieldSession = "sessionId"
)

// CheckoutOrder is one priced catalog selection, as collected by the
// checkout UI. Amounts are in major currency units.
type CheckoutOrder struct {
	Amount        float64
	Currency      string
	MountainID    string
	MountainName  string
	Date          string
	Participants  int
	CustomerName  string
	CustomerEmail string
}

// IntentRequest is the provider-agnostic purchase intent handed to an
// Adapter in live mode. Amount is already converted to minor units and the
// currency is uppercase; adapters apply their own casing.
type IntentRequest struct {
	BookingID   string
	AmountMinor int64
	Currency    string
	Description string
	Metadata    map[string]string
}

// Intent is the purchase intent echoed back to the client: the provider's
// own reference plus the fields the checkout UI needs to hand off to the
// provider's payment flow.
type Intent struct {
	BookingID   string
	Reference   string
	AmountMinor int64
	Currency    string
	ClientKey   string
	CheckoutURL string
	Demo        bool
}

// Adapter covers what actually differs between payment providers: credential
// presence, reference naming, client-side key exposure, and the live API
// call itself. The shared demo/live pipeline lives in Gateway.
type Adapter interface {
	Name() string
	Configured() bool
	ClientKey() string
	ReferenceField() string
	DemoReference(token string) string
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// MinorUnits converts a major-unit amount to integer minor units (cents,
// paise), rounding half away from zero. A tiny nudge absorbs binary
// representation error so decimal inputs sitting on a half-cent boundary,
// e.g. 19.995, round up to 2000 rather than down.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount*100 + math.Copysign(1e-6, amount)))
}
