package entity

import "time"

const (
	WalletTransactionDeposit    = "deposit"
	WalletTransactionWithdrawal = "withdrawal"
	WalletTransactionFee        = "fee"

	WalletCurrencyKES = "KES"
)

type Wallet struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Balance   float64   `db:"balance"`
	Currency  string    `db:"currency"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WalletTransaction is the append-only record of one balance change. The
// reference column is unique so a charge can never be applied twice.
type WalletTransaction struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	WalletID      string    `db:"wallet_id"`
	Type          string    `db:"type"`
	Amount        float64   `db:"amount"`
	Description   string    `db:"description"`
	Status        string    `db:"status"`
	Reference     string    `db:"reference"`
	PaymentMethod string    `db:"payment_method"`
	Channel       *string   `db:"channel"`
	Currency      string    `db:"currency"`
	CreatedAt     time.Time `db:"created_at"`
}
