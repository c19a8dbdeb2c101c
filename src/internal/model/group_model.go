package model

import "time"

type ListGroupsRequest struct {
	Limit  int `json:"limit" validate:"min=0,max=100"`
	Offset int `json:"offset" validate:"min=0"`
}

type GroupResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	MonthlyTarget float64 `json:"monthlyTarget"`
}

type JoinGroupRequest struct {
	GroupID     string `json:"-" validate:"required,max=100"`
	UserID      string `json:"-" validate:"required,max=100"`
	FullName    string `json:"fullName" validate:"max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"max=20"`
}

type JoinGroupResponse struct {
	RequestID string    `json:"requestId"`
	GroupID   string    `json:"groupId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
