package model

import "encoding/json"

const (
	EventChargeSuccess = "charge.success"
	EventChargeFailed  = "charge.failed"

	ChannelMobileMoney = "mobile_money"
	ChannelCard        = "card"
)

// PaystackWebhookEvent is the envelope Paystack posts to the webhook endpoint.
type PaystackWebhookEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type PaystackChargeData struct {
	Reference       string           `json:"reference"`
	Status          string           `json:"status"`
	Amount          int64            `json:"amount"` // minor units (cents)
	Currency        string           `json:"currency"`
	Channel         string           `json:"channel"`
	GatewayResponse string           `json:"gateway_response"`
	PaidAt          string           `json:"paid_at"`
	Customer        PaystackCustomer `json:"customer"`
}

type PaystackCustomer struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ManualCreditRequest struct {
	Reference string `json:"reference" validate:"required,max=100"`
}

type ManualCreditResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"newBalance"`
}

type StuckPaymentsRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type StuckPaymentResponse struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Purpose   string  `json:"purpose"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}
