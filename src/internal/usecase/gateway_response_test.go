package usecase

import (
	"testing"

	"chama-service/src/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseAvailableBalance(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
		found    bool
	}{
		{"airtel ksh", "Your Airtel Money balance is Ksh 35.00", 35.00, true},
		{"mpesa kes", "Failed. Your M-PESA balance is KES 1,250.50 and the amount requested exceeds it", 1250.50, true},
		{"abbreviated currency", "balance is Ksh. 200", 200, true},
		{"uppercase", "YOUR BALANCE IS KSH 12.75", 12.75, true},
		{"no balance", "Transaction declined by provider", 0, false},
		{"empty", "", 0, false},
		{"balance word without amount", "your balance is insufficient", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParseAvailableBalance(tt.response)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestBuildFailureMessage(t *testing.T) {
	t.Run("balance parsed", func(t *testing.T) {
		msg := BuildFailureMessage("Your Airtel Money balance is Ksh 35.00", model.ChannelMobileMoney, 35.00, true)
		assert.Equal(t, "Payment failed: your available balance is KES 35.00. Top up your line or try a smaller amount.", msg)
	})

	t.Run("mobile money without balance", func(t *testing.T) {
		msg := BuildFailureMessage("Request cancelled by user", model.ChannelMobileMoney, 0, false)
		assert.Contains(t, msg, "approve the payment prompt")
	})

	t.Run("card passes gateway text through", func(t *testing.T) {
		msg := BuildFailureMessage("Insufficient Funds", model.ChannelCard, 0, false)
		assert.Equal(t, "Insufficient Funds", msg)
	})
}
