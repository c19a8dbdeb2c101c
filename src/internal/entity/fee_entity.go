package entity

import "time"

// PlatformFee is the service's cut of a successful charge, recorded per
// reference so revenue can be reconciled against the processor statement.
type PlatformFee struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Reference string    `db:"reference"`
	Amount    float64   `db:"amount"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}
