package converter

import (
	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
)

func GroupToResponse(group *entity.ChamaGroup) *model.GroupResponse {
	resp := &model.GroupResponse{
		ID:            group.ID,
		Name:          group.Name,
		MonthlyTarget: group.MonthlyTarget,
	}
	if group.Description.Valid {
		resp.Description = group.Description.String
	}
	return resp
}

func JoinRequestToResponse(req *entity.GroupJoinRequest) *model.JoinGroupResponse {
	return &model.JoinGroupResponse{
		RequestID: req.ID,
		GroupID:   req.GroupID,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	}
}

func NotificationToResponse(n *entity.Notification) *model.NotificationResponse {
	return &model.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
