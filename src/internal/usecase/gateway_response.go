package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"chama-service/src/internal/model"
)

// Telco decline messages look like "Your Airtel Money balance is Ksh 35.00".
// This is best-effort text matching, not a contract with the processor; a
// structured decline code from Paystack always wins when one exists.
var balancePattern = regexp.MustCompile(`(?i)balance\s+is\s+[A-Za-z]{2,4}\.?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

// ParseAvailableBalance extracts the remaining balance from a gateway decline
// message, when the message carries one.
func ParseAvailableBalance(gatewayResponse string) (float64, bool) {
	match := balancePattern.FindStringSubmatch(gatewayResponse)
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// BuildFailureMessage turns a gateway decline into the message shown to the
// user: the parsed balance when we have it, a generic prompt for mobile money,
// otherwise the raw gateway text.
func BuildFailureMessage(gatewayResponse, channel string, balance float64, balanceFound bool) string {
	if balanceFound {
		return fmt.Sprintf("Payment failed: your available balance is KES %.2f. Top up your line or try a smaller amount.", balance)
	}
	if channel == model.ChannelMobileMoney {
		return "Payment failed. Confirm you have sufficient funds and approve the payment prompt on your phone, then try again."
	}
	return gatewayResponse
}

func channelLabel(channel string) string {
	switch channel {
	case model.ChannelMobileMoney:
		return "mobile money"
	case model.ChannelCard:
		return "card"
	default:
		return channel
	}
}
