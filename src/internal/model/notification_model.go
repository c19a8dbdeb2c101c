package model

import "time"

type ListNotificationsRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
	Offset int    `json:"offset" validate:"min=0"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
