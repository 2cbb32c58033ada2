package wire

import (
	"expedition-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckout(r chi.Router, checkoutHandler *adaptor.CheckoutHandler) {
	r.Route("/api/checkout", func(r chi.Router) {
		// POST /api/checkout/razorpay - Create Razorpay order (demo or live)
		r.Post("/razorpay", checkoutHandler.CreateRazorpayOrder)

		// GET /api/checkout/razorpay/status - Report credential presence
		r.Get("/razorpay/status", checkoutHandler.RazorpayStatus)

		// POST /api/checkout/stripe - Create Stripe Checkout session (demo or live)
		r.Post("/stripe", checkoutHandler.CreateStripeSession)

		// POST /api/checkout/quote - Price an amount (service fee + total)
		r.Post("/quote", checkoutHandler.Quote)
	})
}
