package http

import (
	"chama-service/src/internal/delivery/http/middleware"
	"chama-service/src/internal/model"
	"chama-service/src/internal/usecase"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) GetWallet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetWalletRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.GetWallet(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet", fiber.StatusOK, ctx)
}

func (c *WalletController) ListTransactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.WalletTransactionsRequest{
		UserID: auth.UserID,
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	result := c.UseCase.ListTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet Transactions", fiber.StatusOK, ctx)
}

func (c *WalletController) Topup(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.TopupRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.Topup", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.Topup(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Top-up Initiated", fiber.StatusCreated, ctx)
}

func (c *WalletController) ListNotifications(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListNotificationsRequest{
		UserID: auth.UserID,
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	result := c.UseCase.ListNotifications(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Notifications", fiber.StatusOK, ctx)
}
