package entity

import (
	"database/sql"
	"time"
)

const (
	JoinRequestStatusPending  = "pending"
	JoinRequestStatusApproved = "approved"
	JoinRequestStatusRejected = "rejected"
)

type ChamaGroup struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Description   sql.NullString `db:"description"`
	MonthlyTarget float64        `db:"monthly_target"`
	CreatedAt     time.Time      `db:"created_at"`
}

type GroupJoinRequest struct {
	ID          string    `db:"id"`
	GroupID     string    `db:"group_id"`
	UserID      string    `db:"user_id"`
	FullName    string    `db:"full_name"`
	PhoneNumber string    `db:"phone_number"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}
