package pricing

import (
	"math"
)

// Supported checkout currencies.
const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

// Fee schedule. INR bookings pay a 2% platform fee plus 18% GST on the fee
// itself; USD bookings pay the card rate of 2.9% plus a 30-cent fixed fee.
const (
	inrFeeRate  = 0.02
	inrTaxRate  = 0.18
	usdFeeRate  = 0.029
	usdFixedFee = 0.30
)

// ServiceFee returns the service fee for a checkout amount in major currency
// units, rounded to 2 decimal places (half away from zero).
//
// Unsupported currencies get a zero fee rather than an error. That is the
// historical behavior the checkout UI depends on; callers that must reject
// unknown currencies validate the payload before pricing it.
func ServiceFee(currency string, amount float64) float64 {
	var fee float64
	switch currency {
	case CurrencyINR:
		fee = amount * inrFeeRate * (1 + inrTaxRate)
	case CurrencyUSD:
		fee = amount*usdFeeRate + usdFixedFee
	default:
		return 0
	}
	return RoundMoney(fee)
}

// RoundMoney rounds a major-unit amount to 2 decimal places, half away from
// zero.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
