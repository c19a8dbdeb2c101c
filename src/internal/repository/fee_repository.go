package repository

import (
	"context"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/databases/mysql"
)

type PlatformFeeRepository struct {
	DB mysql.DBInterface
}

func NewPlatformFeeRepository(db mysql.DBInterface) *PlatformFeeRepository {
	return &PlatformFeeRepository{
		DB: db,
	}
}

func (r *PlatformFeeRepository) Create(ctx context.Context, fee *entity.PlatformFee) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO platform_fees (id, user_id, reference, amount, source, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query, fee.ID, fee.UserID, fee.Reference, fee.Amount, fee.Source)
	return err
}
