package repository

import (
	"context"
	"database/sql"
	"time"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/databases/mysql"
)

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payment_transactions
			(id, user_id, group_id, reference, purpose, amount, status, payment_method, channel, created_at, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err = db.ExecContext(ctx, query,
		tx.ID, tx.UserID, tx.GroupID, tx.Reference, tx.Purpose, tx.Amount, tx.Status, tx.PaymentMethod, tx.Channel)
	return err
}

func (r *TransactionRepository) FindByReference(ctx context.Context, reference string) (*entity.PaymentTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tx entity.PaymentTransaction
	query := `
		SELECT id, user_id, group_id, reference, purpose, amount, status, payment_method,
		       channel, result_code, result_description, raw_payload, paid_at, created_at, updated_at
		FROM payment_transactions
		WHERE reference = ?
	`
	if err := db.GetContext(ctx, &tx, query, reference); err != nil {
		return nil, err
	}

	return &tx, nil
}

// MarkSuccess is best-effort: zero rows affected is not an error so a callback
// for a reference this service never recorded still acknowledges cleanly.
func (r *TransactionRepository) MarkSuccess(ctx context.Context, reference string, rawPayload []byte, paidAt *time.Time, resultDescription string) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		UPDATE payment_transactions
		SET status = ?, result_description = ?, raw_payload = ?, paid_at = ?, updated_at = NOW()
		WHERE reference = ?
	`
	res, err := db.ExecContext(ctx, query,
		entity.TransactionStatusSuccess, resultDescription, rawPayload, paidAt, reference)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *TransactionRepository) MarkFailed(ctx context.Context, reference, resultCode, resultDescription string, rawPayload []byte) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	query := `
		UPDATE payment_transactions
		SET status = ?, result_code = ?, result_description = ?, raw_payload = ?, updated_at = NOW()
		WHERE reference = ?
	`
	res, err := db.ExecContext(ctx, query,
		entity.TransactionStatusFailed, resultCode, resultDescription, rawPayload, reference)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *TransactionRepository) FindStuckPending(ctx context.Context, method string, olderThan time.Time, limit int) ([]entity.PaymentTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var txs []entity.PaymentTransaction
	query := `
		SELECT id, user_id, group_id, reference, purpose, amount, status, payment_method,
		       channel, result_code, result_description, raw_payload, paid_at, created_at, updated_at
		FROM payment_transactions
		WHERE payment_method = ?
		AND status = ?
		AND created_at < ?
		ORDER BY created_at ASC
		LIMIT ?
	`
	if err := db.SelectContext(ctx, &txs, query, method, entity.TransactionStatusPending, olderThan, limit); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionRepository) FindStuckPendingByUser(ctx context.Context, userID, method string, olderThan time.Time) ([]entity.PaymentTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var txs []entity.PaymentTransaction
	query := `
		SELECT id, user_id, group_id, reference, purpose, amount, status, payment_method,
		       channel, result_code, result_description, raw_payload, paid_at, created_at, updated_at
		FROM payment_transactions
		WHERE user_id = ?
		AND payment_method = ?
		AND status = ?
		AND created_at < ?
		ORDER BY created_at ASC
	`
	if err := db.SelectContext(ctx, &txs, query, userID, method, entity.TransactionStatusPending, olderThan); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return txs, nil
}
