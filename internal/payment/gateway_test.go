package payment

import (
	"context"
	"errors"
	"testing"

	"expedition-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAdapter stands in for a live provider, capturing the request it was
// handed.
type fakeAdapter struct {
	configured bool
	clientKey  string
	lastReq    *IntentRequest
	intent     *Intent
	err        error
}

func (f *fakeAdapter) Name() string                      { return "fake" }
func (f *fakeAdapter) Configured() bool                  { return f.configured }
func (f *fakeAdapter) ClientKey() string                 { return f.clientKey }
func (f *fakeAdapter) ReferenceField() string            { return RefFieldOrder }
func (f *fakeAdapter) DemoReference(token string) string { return "fake_" + token }

func (f *fakeAdapter) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

func sampleOrder() CheckoutOrder {
	return CheckoutOrder{
		Amount:        50,
		Currency:      "USD",
		MountainID:    "everest-base-camp",
		MountainName:  "Everest Base Camp",
		Date:          "2026-10-12",
		Participants:  3,
		CustomerName:  "Asha Rai",
		CustomerEmail: "asha@example.com",
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{50, 5000},
		{99.99, 9999},
		{123.45, 12345},
		{0.005, 1},    // half-cent rounds away from zero
		{19.995, 2000}, // half-cent boundary, not lost to float representation
		{1000000, 100000000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.amount), "amount=%v", tt.amount)
	}
}

func TestGateway_DemoMode_RazorpayAdapter(t *testing.T) {
	adapter := NewRazorpayAdapter(utils.RazorpayConfig{})
	gateway := NewGateway(adapter, zap.NewNop())

	intent, err := gateway.CreatePurchaseIntent(context.Background(), sampleOrder())
	require.NoError(t, err)

	assert.True(t, intent.Demo)
	assert.Regexp(t, `^BK\d+$`, intent.BookingID)
	assert.Equal(t, "order_"+utils.BookingToken(intent.BookingID), intent.Reference)
	assert.Equal(t, int64(5000), intent.AmountMinor)
	assert.Equal(t, "USD", intent.Currency)
	assert.Empty(t, intent.ClientKey)
	assert.Empty(t, intent.CheckoutURL)
}

func TestGateway_DemoMode_StripeAdapter(t *testing.T) {
	adapter := NewStripeAdapter(utils.StripeConfig{})
	gateway := NewGateway(adapter, zap.NewNop())

	intent, err := gateway.CreatePurchaseIntent(context.Background(), sampleOrder())
	require.NoError(t, err)

	assert.True(t, intent.Demo)
	assert.Equal(t, "sess_"+utils.BookingToken(intent.BookingID), intent.Reference)
	assert.Equal(t, int64(5000), intent.AmountMinor)
	assert.Equal(t, "USD", intent.Currency)
}

func TestGateway_DemoMode_DistinctBookingIDs(t *testing.T) {
	gateway := NewGateway(NewRazorpayAdapter(utils.RazorpayConfig{}), zap.NewNop())

	first, err := gateway.CreatePurchaseIntent(context.Background(), sampleOrder())
	require.NoError(t, err)
	second, err := gateway.CreatePurchaseIntent(context.Background(), sampleOrder())
	require.NoError(t, err)

	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestGateway_LiveMode_AdapterRequest(t *testing.T) {
	adapter := &fakeAdapter{
		configured: true,
		intent:     &Intent{Reference: "order_live123", AmountMinor: 2000, Currency: "INR"},
	}
	gateway := NewGateway(adapter, zap.NewNop())

	order := sampleOrder()
	order.Amount = 19.995
	order.Currency = "inr"

	intent, err := gateway.CreatePurchaseIntent(context.Background(), order)
	require.NoError(t, err)
	require.NotNil(t, adapter.lastReq)

	// Amount converted to minor units, half away from zero
	assert.Equal(t, int64(2000), adapter.lastReq.AmountMinor)
	// Currency normalized to uppercase before the adapter applies its casing
	assert.Equal(t, "INR", adapter.lastReq.Currency)
	// Receipt equals the booking reference echoed to the client
	assert.Equal(t, intent.BookingID, adapter.lastReq.BookingID)
	assert.Regexp(t, `^BK\d+$`, intent.BookingID)

	assert.Equal(t, map[string]string{
		"mountainId":    "everest-base-camp",
		"mountainName":  "Everest Base Camp",
		"date":          "2026-10-12",
		"participants":  "3",
		"customerName":  "Asha Rai",
		"customerEmail": "asha@example.com",
	}, adapter.lastReq.Metadata)

	assert.Equal(t, "order_live123", intent.Reference)
	assert.False(t, intent.Demo)
}

func TestGateway_LiveMode_ProviderFailure(t *testing.T) {
	adapter := &fakeAdapter{
		configured: true,
		err:        errors.New("connection reset"),
	}
	gateway := NewGateway(adapter, zap.NewNop())

	intent, err := gateway.CreatePurchaseIntent(context.Background(), sampleOrder())

	// The provider error stays server-side; callers get the generic sentinel.
	require.ErrorIs(t, err, ErrIntentFailed)
	assert.NotContains(t, err.Error(), "connection reset")
	assert.Nil(t, intent)
}

func TestAdapters_DemoReferencePrefixes(t *testing.T) {
	razorpay := NewRazorpayAdapter(utils.RazorpayConfig{})
	stripe := NewStripeAdapter(utils.StripeConfig{})

	assert.Equal(t, "order_abc", razorpay.DemoReference("abc"))
	assert.Equal(t, "sess_abc", stripe.DemoReference("abc"))
	assert.Equal(t, RefFieldOrder, razorpay.ReferenceField())
	assert.Equal(t, RefFieldSession, stripe.ReferenceField())
}

func TestRazorpayAdapter_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  utils.RazorpayConfig
		want bool
	}{
		{"both present", utils.RazorpayConfig{KeyID: "rzp_test_key", KeySecret: "secret"}, true},
		{"missing secret", utils.RazorpayConfig{KeyID: "rzp_test_key"}, false},
		{"missing key id", utils.RazorpayConfig{KeySecret: "secret"}, false},
		{"both absent", utils.RazorpayConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRazorpayAdapter(tt.cfg).Configured())
		})
	}
}

func TestStripeAdapter_Configured(t *testing.T) {
	assert.True(t, NewStripeAdapter(utils.StripeConfig{SecretKey: "sk_test_123"}).Configured())
	assert.False(t, NewStripeAdapter(utils.StripeConfig{}).Configured())
}
