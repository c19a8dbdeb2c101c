package usecase

import (
	"context"
	"fmt"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
	"chama-service/src/internal/model/converter"
	"chama-service/src/internal/repository"
	httpError "chama-service/src/pkg/http-error"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type WalletUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	WalletRepository       repository.Wallets
	TransactionRepository  repository.Transactions
	NotificationRepository repository.Notifications
	Config                 *viper.Viper
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	walletRepository repository.Wallets,
	transactionRepository repository.Transactions,
	notificationRepository repository.Notifications,
	cfg *viper.Viper,
) *WalletUseCase {
	return &WalletUseCase{
		Log:                    logger,
		Validate:               validate,
		WalletRepository:       walletRepository,
		TransactionRepository:  transactionRepository,
		NotificationRepository: notificationRepository,
		Config:                 cfg,
	}
}

func (c *WalletUseCase) GetWallet(ctx context.Context, request *model.GetWalletRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	wallet, err := c.WalletRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		// wallets are created lazily on first credit
		errObj := httpError.NewNotFound()
		errObj.Message = "wallet not found, it is created on your first top-up"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetWallet", request.UserID)
		return result
	}

	result.Data = converter.WalletToResponse(wallet)
	return result
}

func (c *WalletUseCase) ListTransactions(ctx context.Context, request *model.WalletTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	limit := request.Limit
	if limit == 0 {
		limit = 50
	}
	txs, err := c.WalletRepository.ListTransactions(ctx, request.UserID, limit, request.Offset)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list wallet transactions: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ListTransactions", request.UserID)
		return result
	}

	responses := make([]*model.WalletTransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, converter.WalletTransactionToResponse(&txs[i]))
	}
	result.Data = responses
	return result
}

// Topup records a pending paystack charge before the client opens the
// processor checkout; the webhook or the sweep settles it later.
func (c *WalletUseCase) Topup(ctx context.Context, request *model.TopupRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "Topup", utils.ConvertString(request))
		return result
	}

	txn := &entity.PaymentTransaction{
		ID:            uuid.NewString(),
		UserID:        request.UserID,
		Reference:     fmt.Sprintf("CHAMA-%s", uuid.NewString()),
		Purpose:       entity.PurposeWalletTopup,
		Amount:        request.Amount,
		Status:        entity.TransactionStatusPending,
		PaymentMethod: entity.PaymentMethodPaystack,
		Channel:       &request.Channel,
	}
	if err := c.TransactionRepository.Create(ctx, txn); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create transaction: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "Topup", request.UserID)
		return result
	}

	c.Log.Info("wallet-usecase", "top-up initiated", "Topup", txn.Reference)
	result.Data = &model.TopupResponse{
		Reference: txn.Reference,
		Amount:    txn.Amount,
		Currency:  entity.WalletCurrencyKES,
		Status:    txn.Status,
	}
	return result
}

func (c *WalletUseCase) ListNotifications(ctx context.Context, request *model.ListNotificationsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	limit := request.Limit
	if limit == 0 {
		limit = 50
	}
	notifications, err := c.NotificationRepository.ListByUser(ctx, request.UserID, limit, request.Offset)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list notifications: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ListNotifications", request.UserID)
		return result
	}

	responses := make([]*model.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, converter.NotificationToResponse(&notifications[i]))
	}
	result.Data = responses
	return result
}
