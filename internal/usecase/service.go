package usecase

import (
	"expedition-booking/internal/payment"
	"expedition-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Checkout CheckoutService
}

// NewService builds the payment gateways from the startup config. The config
// is read once here; nothing re-reads the environment at request time.
func NewService(config *utils.Config, log *zap.Logger) *Service {
	gateways := map[string]*payment.Gateway{
		GatewayRazorpay: payment.NewGateway(payment.NewRazorpayAdapter(config.Razorpay), log),
		GatewayStripe:   payment.NewGateway(payment.NewStripeAdapter(config.Stripe), log),
	}

	return &Service{
		Checkout: NewCheckoutService(gateways, log),
	}
}
