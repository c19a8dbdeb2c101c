package repository

import (
	"context"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/databases/mysql"
)

type GroupRepository struct {
	DB mysql.DBInterface
}

func NewGroupRepository(db mysql.DBInterface) *GroupRepository {
	return &GroupRepository{
		DB: db,
	}
}

func (r *GroupRepository) List(ctx context.Context, limit, offset int) ([]entity.ChamaGroup, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var groups []entity.ChamaGroup
	query := `
		SELECT id, name, description, monthly_target, created_at
		FROM chama_groups
		ORDER BY name ASC
		LIMIT ? OFFSET ?
	`
	if err := db.SelectContext(ctx, &groups, query, limit, offset); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id string) (*entity.ChamaGroup, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var group entity.ChamaGroup
	query := `
		SELECT id, name, description, monthly_target, created_at
		FROM chama_groups
		WHERE id = ?
	`
	if err := db.GetContext(ctx, &group, query, id); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) HasPendingJoinRequest(ctx context.Context, groupID, userID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int
	query := `
		SELECT COUNT(1)
		FROM group_join_requests
		WHERE group_id = ? AND user_id = ? AND status = ?
	`
	if err := db.GetContext(ctx, &count, query, groupID, userID, entity.JoinRequestStatusPending); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GroupRepository) CreateJoinRequest(ctx context.Context, request *entity.GroupJoinRequest) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO group_join_requests (id, group_id, user_id, full_name, phone_number, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		request.ID, request.GroupID, request.UserID, request.FullName, request.PhoneNumber, request.Status)
	return err
}
