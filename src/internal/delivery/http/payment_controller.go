package http

import (
	"chama-service/src/internal/delivery/http/middleware"
	"chama-service/src/internal/model"
	"chama-service/src/internal/usecase"
	httpError "chama-service/src/pkg/http-error"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

// ManualCredit is the repair path for charges the webhook never settled.
// Clients expect 200 {success, message, amount, newBalance} or
// 400 {success: false, error}.
func (c *PaymentController) ManualCredit(ctx *fiber.Ctx) error {
	request := new(model.ManualCreditRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.ManualCredit", "Failed to parse request body", "error", err.Error())
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	result := c.UseCase.CreditByReference(ctx.Context(), request)
	if result.Error != nil {
		message := "credit failed"
		if errObj, ok := result.Error.(*httpError.CommonError); ok {
			message = errObj.Message
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(result.Data)
}

func (c *PaymentController) ListStuck(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.StuckPaymentsRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.ListStuck(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Stuck Payments", fiber.StatusOK, ctx)
}
