package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceFee(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		amount   float64
		want     float64
	}{
		{
			name:     "USD card rate plus fixed fee",
			currency: "USD",
			amount:   1000,
			want:     29.30,
		},
		{
			name:     "INR base fee plus tax on the fee",
			currency: "INR",
			amount:   1000,
			want:     23.60,
		},
		{
			name:     "unsupported currency falls back to zero fee",
			currency: "EUR",
			amount:   1000,
			want:     0,
		},
		{
			name:     "empty currency falls back to zero fee",
			currency: "",
			amount:   1000,
			want:     0,
		},
		{
			name:     "zero amount USD still pays the fixed fee",
			currency: "USD",
			amount:   0,
			want:     0.30,
		},
		{
			name:     "zero amount INR",
			currency: "INR",
			amount:   0,
			want:     0,
		},
		{
			name:     "USD fee rounds to two decimals",
			currency: "USD",
			amount:   10.10,
			want:     0.59, // 10.10*0.029 + 0.30 = 0.5929
		},
		{
			name:     "INR fee rounds to two decimals",
			currency: "INR",
			amount:   999,
			want:     23.58, // 999*0.02*1.18 = 23.5764
		},
		{
			name:     "lowercase currency is not recognized",
			currency: "usd",
			amount:   1000,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServiceFee(tt.currency, tt.amount)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestServiceFee_Idempotent(t *testing.T) {
	first := ServiceFee("INR", 4999.99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ServiceFee("INR", 4999.99))
	}
}

func TestServiceFee_NeverNegative(t *testing.T) {
	amounts := []float64{0, 0.01, 0.005, 1, 19.995, 1000, 1e6}
	currencies := []string{"USD", "INR", "EUR", ""}

	for _, currency := range currencies {
		for _, amount := range amounts {
			fee := ServiceFee(currency, amount)
			assert.GreaterOrEqual(t, fee, 0.0, "currency=%s amount=%v", currency, amount)
		}
	}
}

func TestRoundMoney(t *testing.T) {
	assert.InDelta(t, 23.58, RoundMoney(23.5764), 1e-9)
	assert.InDelta(t, 0.59, RoundMoney(0.5929), 1e-9)
	assert.InDelta(t, 1029.30, RoundMoney(1000+29.30), 1e-9)
}
