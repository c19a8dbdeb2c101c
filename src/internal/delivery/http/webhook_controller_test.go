package http

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"chama-service/src/internal/usecase"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/paystack"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookApp(secret string) *fiber.App {
	config := viper.New()
	if secret != "" {
		config.Set("paystack.secret_key", secret)
	}

	useCase := &usecase.PaymentUseCase{Log: log.Log{}, Config: config}
	controller := NewWebhookController(useCase, config, log.Log{})

	app := fiber.New()
	app.Post("/webhooks/v1/paystack", controller.PaystackCallback)
	return app
}

func TestPaystackCallbackMissingSecret(t *testing.T) {
	app := newWebhookApp("")

	req := httptest.NewRequest(fiber.MethodPost, "/webhooks/v1/paystack", bytes.NewReader([]byte(`{}`)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestPaystackCallbackInvalidSignature(t *testing.T) {
	app := newWebhookApp("sk_test_xxxx")
	body := []byte(`{"event":"charge.success","data":{}}`)

	req := httptest.NewRequest(fiber.MethodPost, "/webhooks/v1/paystack", bytes.NewReader(body))
	req.Header.Set(paystack.SignatureHeader, "deadbeef")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPaystackCallbackMissingSignature(t *testing.T) {
	app := newWebhookApp("sk_test_xxxx")

	req := httptest.NewRequest(fiber.MethodPost, "/webhooks/v1/paystack", bytes.NewReader([]byte(`{}`)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPaystackCallbackValidSignature(t *testing.T) {
	secret := "sk_test_xxxx"
	app := newWebhookApp(secret)
	// an event type the processor sends but this service does not act on
	body := []byte(`{"event":"transfer.success","data":{}}`)

	req := httptest.NewRequest(fiber.MethodPost, "/webhooks/v1/paystack", bytes.NewReader(body))
	req.Header.Set(paystack.SignatureHeader, paystack.Sign(secret, body))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(payload))
}
