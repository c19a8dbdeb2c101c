package repository

import (
	"context"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/databases/mysql"
)

type NotificationRepository struct {
	DB mysql.DBInterface
}

func NewNotificationRepository(db mysql.DBInterface) *NotificationRepository {
	return &NotificationRepository{
		DB: db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, 0, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		notification.ID, notification.UserID, notification.Title, notification.Message, notification.Type)
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	query := `
		SELECT id, user_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	if err := db.SelectContext(ctx, &notifications, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return notifications, nil
}
