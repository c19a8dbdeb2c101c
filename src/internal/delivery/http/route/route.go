package route

import (
	"chama-service/src/internal/delivery/http"
	"chama-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	WebhookController *http.WebhookController
	PaymentController *http.PaymentController
	WalletController  *http.WalletController
	GroupController   *http.GroupController
	AuthMiddleware    fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupWebhookRoute()
	c.SetupAuthRoute()
}

// SetupWebhookRoute registers the processor callback. It sits outside the
// bearer-auth group: its caller authenticates with the HMAC signature.
func (c *RouteConfig) SetupWebhookRoute() {
	c.App.Post("/webhooks/v1/paystack", c.WebhookController.PaystackCallback)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)
	c.App.Post("/payments/v1/credit", c.PaymentController.ManualCredit)
	c.App.Get("/payments/v1/stuck", c.PaymentController.ListStuck)
	c.App.Get("/wallets/v1/me", c.WalletController.GetWallet)
	c.App.Get("/wallets/v1/me/transactions", c.WalletController.ListTransactions)
	c.App.Post("/wallets/v1/topup", c.WalletController.Topup)
	c.App.Get("/notifications/v1", c.WalletController.ListNotifications)
	c.App.Get("/groups/v1", c.GroupController.ListGroups)
	c.App.Post("/groups/v1/:id/join", c.GroupController.JoinGroup)
}
