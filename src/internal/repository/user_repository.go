package repository

import (
	"context"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/databases/mysql"
)

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `
		SELECT user_id, full_name, email, mobile_number, created_at, updated_at
		FROM users
		WHERE user_id = ?
	`
	if err := db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}
