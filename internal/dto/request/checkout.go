package request

type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// CheckoutRequest is one checkout attempt: a priced catalog selection plus
// the customer placing it. Amount is in major currency units.
type CheckoutRequest struct {
	Amount       float64      `json:"amount" validate:"required,gt=0"`
	Currency     string       `json:"currency" validate:"required,oneof=USD INR"`
	MountainID   string       `json:"mountainId" validate:"required"`
	MountainName string       `json:"mountainName" validate:"required"`
	Date         string       `json:"date" validate:"required,datetime=2006-01-02"`
	Participants int          `json:"participants" validate:"required,gte=1"`
	CustomerInfo CustomerInfo `json:"customerInfo" validate:"required"`
}

type QuoteRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,oneof=USD INR"`
}
