package entity

import "time"

const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"

	PurposeWalletTopup  = "wallet_topup"
	PurposeContribution = "contribution"

	PaymentMethodPaystack = "paystack"
)

// PaymentTransaction is one charge attempt against the payment processor,
// keyed by the processor-supplied reference.
type PaymentTransaction struct {
	ID                string     `db:"id"`
	UserID            string     `db:"user_id"`
	GroupID           *string    `db:"group_id"`
	Reference         string     `db:"reference"`
	Purpose           string     `db:"purpose"`
	Amount            float64    `db:"amount"`
	Status            string     `db:"status"`
	PaymentMethod     string     `db:"payment_method"`
	Channel           *string    `db:"channel"`
	ResultCode        *string    `db:"result_code"`
	ResultDescription *string    `db:"result_description"`
	RawPayload        []byte     `db:"raw_payload"`
	PaidAt            *time.Time `db:"paid_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}
