package repository

import (
	"context"
	"database/sql"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{
		DB: db,
	}
}

func (r *WalletRepository) FindByUserID(ctx context.Context, userID string) (*entity.Wallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallet entity.Wallet
	query := `
		SELECT id, user_id, balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = ?
	`
	if err := db.GetContext(ctx, &wallet, query, userID); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// CreditByReference applies one credit inside a single DB transaction. The
// reference is the idempotency key: a reference that already has a
// wallet_transactions row returns the current balance without a second credit,
// and the balance update is an in-place add so concurrent credits to the same
// wallet cannot lose an update.
func (r *WalletRepository) CreditByReference(ctx context.Context, params CreditParams) (*CreditOutcome, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existingWalletID string
	err = tx.GetContext(ctx, &existingWalletID,
		`SELECT wallet_id FROM wallet_transactions WHERE reference = ? FOR UPDATE`, params.Reference)
	if err == nil {
		var balance float64
		if err := tx.GetContext(ctx, &balance, `SELECT balance FROM wallets WHERE id = ?`, existingWalletID); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return &CreditOutcome{WalletID: existingWalletID, NewBalance: balance, Credited: false}, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	var wallet entity.Wallet
	err = tx.GetContext(ctx, &wallet,
		`SELECT id, user_id, balance, currency, created_at, updated_at FROM wallets WHERE user_id = ? FOR UPDATE`,
		params.UserID)
	if err == sql.ErrNoRows {
		wallet = entity.Wallet{
			ID:       uuid.NewString(),
			UserID:   params.UserID,
			Currency: params.Currency,
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO wallets (id, user_id, balance, currency, created_at, updated_at) VALUES (?, ?, 0, ?, NOW(), NOW())`,
			wallet.ID, wallet.UserID, wallet.Currency)
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance + ?, updated_at = NOW() WHERE id = ?`,
		params.Amount, wallet.ID); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions
			(id, user_id, wallet_id, type, amount, description, status, reference, payment_method, channel, currency, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		uuid.NewString(), params.UserID, wallet.ID, entity.WalletTransactionDeposit,
		params.Amount, params.Description, entity.TransactionStatusSuccess,
		params.Reference, params.PaymentMethod, params.Channel, params.Currency); err != nil {
		return nil, err
	}

	var newBalance float64
	if err := tx.GetContext(ctx, &newBalance, `SELECT balance FROM wallets WHERE id = ?`, wallet.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &CreditOutcome{WalletID: wallet.ID, NewBalance: newBalance, Credited: true}, nil
}

func (r *WalletRepository) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]entity.WalletTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var txs []entity.WalletTransaction
	query := `
		SELECT id, user_id, wallet_id, type, amount, description, status, reference,
		       payment_method, channel, currency, created_at
		FROM wallet_transactions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	if err := db.SelectContext(ctx, &txs, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return txs, nil
}
