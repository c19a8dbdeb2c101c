package http

import (
	"chama-service/src/internal/usecase"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/paystack"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type WebhookController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
	Config  *viper.Viper
}

func NewWebhookController(useCase *usecase.PaymentUseCase, config *viper.Viper, logger log.Log) *WebhookController {
	return &WebhookController{
		Log:     logger,
		UseCase: useCase,
		Config:  config,
	}
}

// PaystackCallback receives charge webhooks. Everything past the signature
// check acknowledges with 200 so the processor never enters a redelivery
// storm over our internal failures.
func (c *WebhookController) PaystackCallback(ctx *fiber.Ctx) error {
	secret := c.Config.GetString("paystack.secret_key")
	if secret == "" {
		c.Log.Error("WebhookController.PaystackCallback", "paystack secret key is not configured", "config", "")
		return ctx.Status(fiber.StatusInternalServerError).SendString("webhook secret not configured")
	}

	body := ctx.Body()
	signature := ctx.Get(paystack.SignatureHeader)
	if !paystack.VerifySignature(secret, body, signature) {
		c.Log.Error("WebhookController.PaystackCallback", "signature mismatch", "auth", ctx.IP())
		return ctx.Status(fiber.StatusUnauthorized).SendString("invalid signature")
	}

	if err := c.UseCase.ProcessCallback(ctx.Context(), body); err != nil {
		c.Log.Error("WebhookController.PaystackCallback", err.Error(), "process", "")
	}

	return ctx.Status(fiber.StatusOK).SendString("OK")
}
