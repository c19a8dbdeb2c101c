package model

import "time"

type GetWalletRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type WalletResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type WalletTransactionsRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
	Offset int    `json:"offset" validate:"min=0"`
}

type WalletTransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Reference     string    `json:"reference"`
	PaymentMethod string    `json:"paymentMethod"`
	Channel       string    `json:"channel,omitempty"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TopupRequest struct {
	UserID  string  `json:"-" validate:"required,max=100"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Channel string  `json:"channel" validate:"required,oneof=mobile_money card"`
}

type TopupResponse struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
}
