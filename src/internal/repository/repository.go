package repository

import (
	"context"
	"time"

	"chama-service/src/internal/entity"
)

type Transactions interface {
	Create(ctx context.Context, tx *entity.PaymentTransaction) error
	FindByReference(ctx context.Context, reference string) (*entity.PaymentTransaction, error)
	MarkSuccess(ctx context.Context, reference string, rawPayload []byte, paidAt *time.Time, resultDescription string) (int64, error)
	MarkFailed(ctx context.Context, reference, resultCode, resultDescription string, rawPayload []byte) (int64, error)
	FindStuckPending(ctx context.Context, method string, olderThan time.Time, limit int) ([]entity.PaymentTransaction, error)
	FindStuckPendingByUser(ctx context.Context, userID, method string, olderThan time.Time) ([]entity.PaymentTransaction, error)
}

type Wallets interface {
	FindByUserID(ctx context.Context, userID string) (*entity.Wallet, error)
	CreditByReference(ctx context.Context, params CreditParams) (*CreditOutcome, error)
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]entity.WalletTransaction, error)
}

type Notifications interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, error)
}

type PlatformFees interface {
	Create(ctx context.Context, fee *entity.PlatformFee) error
}

type Groups interface {
	List(ctx context.Context, limit, offset int) ([]entity.ChamaGroup, error)
	FindByID(ctx context.Context, id string) (*entity.ChamaGroup, error)
	HasPendingJoinRequest(ctx context.Context, groupID, userID string) (bool, error)
	CreateJoinRequest(ctx context.Context, request *entity.GroupJoinRequest) error
}

type Users interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// CreditParams describes one wallet credit keyed by a processor reference.
type CreditParams struct {
	UserID        string
	Reference     string
	Amount        float64
	Description   string
	PaymentMethod string
	Channel       *string
	Currency      string
}

// CreditOutcome reports what CreditByReference did. Credited is false when the
// reference had already been applied, in which case NewBalance is the current
// balance and no row was written.
type CreditOutcome struct {
	WalletID   string
	NewBalance float64
	Credited   bool
}
