package converter

import (
	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
)

func WalletToResponse(wallet *entity.Wallet) *model.WalletResponse {
	return &model.WalletResponse{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Balance:   wallet.Balance,
		Currency:  wallet.Currency,
		UpdatedAt: wallet.UpdatedAt,
	}
}

func WalletTransactionToResponse(tx *entity.WalletTransaction) *model.WalletTransactionResponse {
	resp := &model.WalletTransactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Description:   tx.Description,
		Status:        tx.Status,
		Reference:     tx.Reference,
		PaymentMethod: tx.PaymentMethod,
		Currency:      tx.Currency,
		CreatedAt:     tx.CreatedAt,
	}
	if tx.Channel != nil {
		resp.Channel = *tx.Channel
	}
	return resp
}
