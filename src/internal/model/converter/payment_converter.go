package converter

import (
	"time"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"

	"github.com/google/uuid"
)

func StuckPaymentToResponse(tx *entity.PaymentTransaction) *model.StuckPaymentResponse {
	return &model.StuckPaymentResponse{
		Reference: tx.Reference,
		Amount:    tx.Amount,
		Purpose:   tx.Purpose,
		Status:    tx.Status,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}

func PaymentToEvent(tx *entity.PaymentTransaction, status, message string) *model.PaymentEvent {
	return &model.PaymentEvent{
		EventID:   uuid.NewString(),
		UserID:    tx.UserID,
		Reference: tx.Reference,
		Status:    status,
		Amount:    tx.Amount,
		Message:   message,
	}
}
