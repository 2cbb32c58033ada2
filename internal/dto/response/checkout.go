package response

// PurchaseIntentResponse is echoed to the checkout UI after an intent is
// created. Exactly one of OrderID or SessionID is set depending on the
// gateway; Amount is in minor currency units. Demo marks a synthesized
// intent no provider was contacted for.
type PurchaseIntentResponse struct {
	Demo      bool   `json:"demo,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	BookingID string `json:"bookingId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Key       string `json:"key,omitempty"`
	URL       string `json:"url,omitempty"`
}

// QuoteResponse prices an amount before checkout. All values are in major
// currency units.
type QuoteResponse struct {
	Amount     float64 `json:"amount"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}

type GatewayStatusResponse struct {
	Configured bool `json:"configured"`
}
